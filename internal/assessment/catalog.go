// Package assessment holds the fixed clinical questionnaire catalog
// (PHQ-9 and GAD-7) and the pure validation and scoring logic over it.
// Nothing in this package touches the database or the clock.
package assessment

// Instrument names. These are the only two questionnaire types the
// platform offers; both use the same 4-point ordinal answer scale.
const (
	TypePHQ9 = "PHQ-9"
	TypeGAD7 = "GAD-7"
)

// Option is one of the four ordinal answers to a question, scored 0-3.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Question is a single catalog question. IDs are 1-based and
// contiguous within an instrument.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// TypeInfo describes an instrument for the catalog listing endpoint.
type TypeInfo struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// Types lists the available instruments in presentation order.
func Types() []TypeInfo {
	return []TypeInfo{
		{Type: TypePHQ9, Title: "Mental Wellness Check", Duration: "5 min"},
		{Type: TypeGAD7, Title: "Anxiety & Stress Assessment", Duration: "10 min"},
	}
}

// Questions returns the ordered question list for an instrument, or
// false for an unknown type.
func Questions(kind string) ([]Question, bool) {
	switch kind {
	case TypePHQ9:
		return phq9Questions, true
	case TypeGAD7:
		return gad7Questions, true
	}
	return nil, false
}

// QuestionCount returns the number of questions in an instrument, or
// false for an unknown type.
func QuestionCount(kind string) (int, bool) {
	switch kind {
	case TypePHQ9:
		return len(phq9Questions), true
	case TypeGAD7:
		return len(gad7Questions), true
	}
	return 0, false
}

// frequencyOptions is the shared "over the last two weeks" answer
// scale used by every PHQ-9 and GAD-7 question.
var frequencyOptions = []Option{
	{Value: 0, Label: "Not at all"},
	{Value: 1, Label: "Several days"},
	{Value: 2, Label: "More than half the days"},
	{Value: 3, Label: "Nearly every day"},
}

var phq9Questions = []Question{
	{ID: 1, Text: "Little interest or pleasure in doing things", Options: frequencyOptions},
	{ID: 2, Text: "Feeling down, depressed, or hopeless", Options: frequencyOptions},
	{ID: 3, Text: "Trouble falling or staying asleep, or sleeping too much", Options: frequencyOptions},
	{ID: 4, Text: "Feeling tired or having little energy", Options: frequencyOptions},
	{ID: 5, Text: "Poor appetite or overeating", Options: frequencyOptions},
	{ID: 6, Text: "Feeling bad about yourself - or that you are a failure or have let yourself or your family down", Options: frequencyOptions},
	{ID: 7, Text: "Trouble concentrating on things, such as reading the newspaper or watching television", Options: frequencyOptions},
	{ID: 8, Text: "Moving or speaking so slowly that other people could have noticed. Or the opposite - being so fidgety or restless that you have been moving around a lot more than usual", Options: frequencyOptions},
	{ID: 9, Text: "Thoughts that you would be better off dead, or of hurting yourself in some way", Options: frequencyOptions},
}

var gad7Questions = []Question{
	{ID: 1, Text: "Feeling nervous, anxious, or on edge", Options: frequencyOptions},
	{ID: 2, Text: "Not being able to stop or control worrying", Options: frequencyOptions},
	{ID: 3, Text: "Worrying too much about different things", Options: frequencyOptions},
	{ID: 4, Text: "Trouble relaxing", Options: frequencyOptions},
	{ID: 5, Text: "Being so restless that it is hard to sit still", Options: frequencyOptions},
	{ID: 6, Text: "Becoming easily annoyed or irritable", Options: frequencyOptions},
	{ID: 7, Text: "Feeling afraid, as if something awful might happen", Options: frequencyOptions},
}
