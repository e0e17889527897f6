package assessment

// Band maps a score range to a qualitative severity label. Bands are
// contiguous and exhaustive over [0, 3*len(questions)] for each instrument.
type Band struct {
	Min   int
	Max   int
	Label string
	Tone  string // display hint: green, yellow, orange, red
}

// Definition is a fixed screening instrument.
type Definition struct {
	ID          string
	Title       string
	Description string
	Questions   []string
	Scoring     []Band
}

// Option is one of the four standard frequency answers, scored 0-3.
type Option struct {
	Label string
	Score int
}

// Options returns the answer choices shared by both instruments.
func Options() []Option {
	return []Option{
		{Label: "Not at all", Score: 0},
		{Label: "Several days", Score: 1},
		{Label: "More than half the days", Score: 2},
		{Label: "Nearly every day", Score: 3},
	}
}

var gad7 = Definition{
	ID:          "gad7",
	Title:       "Generalized Anxiety Disorder (GAD-7)",
	Description: "A screening tool for signs of anxiety.",
	Questions: []string{
		"Feeling nervous, anxious, or on edge",
		"Not being able to stop or control worrying",
		"Worrying too much about different things",
		"Trouble relaxing",
		"Being so restless that it is hard to sit still",
		"Becoming easily annoyed or irritable",
		"Feeling afraid as if something awful might happen",
	},
	Scoring: []Band{
		{Min: 0, Max: 4, Label: "Minimal Anxiety", Tone: "green"},
		{Min: 5, Max: 9, Label: "Mild Anxiety", Tone: "yellow"},
		{Min: 10, Max: 14, Label: "Moderate Anxiety", Tone: "orange"},
		{Min: 15, Max: 21, Label: "Severe Anxiety", Tone: "red"},
	},
}

var phq9 = Definition{
	ID:          "phq9",
	Title:       "Patient Health Questionnaire (PHQ-9)",
	Description: "A screening tool for signs of depression.",
	Questions: []string{
		"Little interest or pleasure in doing things",
		"Feeling down, depressed, or hopeless",
		"Trouble falling or staying asleep, or sleeping too much",
		"Feeling tired or having little energy",
		"Poor appetite or overeating",
		"Feeling bad about yourself — or that you are a failure or have let yourself or your family down",
		"Trouble concentrating on things, such as reading the newspaper or watching television",
		"Moving or speaking so slowly that other people could have noticed? Or the opposite — being so fidgety or restless that you have been moving around a lot more than usual",
		"Thoughts that you would be better off dead or of hurting yourself in some way",
	},
	Scoring: []Band{
		{Min: 0, Max: 4, Label: "Minimal Depression", Tone: "green"},
		{Min: 5, Max: 9, Label: "Mild Depression", Tone: "yellow"},
		{Min: 10, Max: 14, Label: "Moderate Depression", Tone: "orange"},
		{Min: 15, Max: 19, Label: "Moderately Severe Depression", Tone: "orange"},
		{Min: 20, Max: 27, Label: "Severe Depression", Tone: "red"},
	},
}

// Get returns the instrument for an ID.
func Get(id string) (Definition, bool) {
	switch id {
	case "gad7":
		return gad7, true
	case "phq9":
		return phq9, true
	}
	return Definition{}, false
}

// All returns both instruments in selection order.
func All() []Definition {
	return []Definition{gad7, phq9}
}
