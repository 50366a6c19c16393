package catalog

import "unicode/utf8"

// MinValue and MaxValue bound the ordinal score carried by every option.
const (
	MinValue = 1
	MaxValue = 5
)

// Option is one selectable answer of a question.
type Option struct {
	ID    string `yaml:"id" json:"id"`
	Text  string `yaml:"text" json:"text"`
	Value int    `yaml:"value" json:"value"`
}

// Bracket maps a set of option values to a diagnosis and a recommendation.
// Across one question the ranges are expected to partition MinValue..MaxValue.
type Bracket struct {
	Range          []int  `yaml:"range" json:"range"`
	Diagnosis      string `yaml:"diagnosis" json:"diagnosis"`
	Recommendation string `yaml:"recommendation" json:"recommendation"`
}

// Contains reports whether v is one of the bracket's values.
func (b Bracket) Contains(v int) bool {
	for _, r := range b.Range {
		if r == v {
			return true
		}
	}
	return false
}

// Question is a single multiple-choice item of the catalog.
type Question struct {
	ID       int       `yaml:"id" json:"id"`
	Text     string    `yaml:"text" json:"text"`
	Example  string    `yaml:"example,omitempty" json:"example,omitempty"`
	Options  []Option  `yaml:"options" json:"options"`
	Feedback []Bracket `yaml:"feedback" json:"feedback"`
}

// Option returns the option with the given id.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// HasOption reports whether id names one of the question's options.
func (q Question) HasOption(id string) bool {
	_, ok := q.Option(id)
	return ok
}

// IsNumericScale reports whether the question should be shown as a 1-5
// rating row: exactly five options, each labelled with at most two characters.
func (q Question) IsNumericScale() bool {
	if len(q.Options) != 5 {
		return false
	}
	for _, o := range q.Options {
		if utf8.RuneCountInString(o.Text) > 2 {
			return false
		}
	}
	return true
}

// Answers maps Question.ID to the selected Option.ID.
type Answers map[int]string

// Clone returns an independent copy of the answers.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Category classifies an overall result.
type Category string

const (
	CategorySuccess Category = "success"
	CategoryWarning Category = "warning"
	CategoryInfo    Category = "info"
	CategoryDanger  Category = "danger"
)

// Result is the holistic outcome shown at the top of the report.
type Result struct {
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Category     Category `yaml:"category" json:"category"`
	ImageKeyword string   `yaml:"image_keyword,omitempty" json:"image_keyword,omitempty"`
}

// Condition holds the optional predicates of a result rule. Every predicate
// that is set must hold for the rule to match; an empty condition always
// matches. Shares are fractions in [0, 1].
type Condition struct {
	MinAnswered      *int     `yaml:"min_answered,omitempty" json:"min_answered,omitempty"`
	MaxAnswered      *int     `yaml:"max_answered,omitempty" json:"max_answered,omitempty"`
	MaxAnsweredShare *float64 `yaml:"max_answered_share,omitempty" json:"max_answered_share,omitempty"`
	MinWeak          *int     `yaml:"min_weak,omitempty" json:"min_weak,omitempty"`
	MaxWeak          *int     `yaml:"max_weak,omitempty" json:"max_weak,omitempty"`
	MinWeakShare     *float64 `yaml:"min_weak_share,omitempty" json:"min_weak_share,omitempty"`
	MinStrongShare   *float64 `yaml:"min_strong_share,omitempty" json:"min_strong_share,omitempty"`
	MinMean          *float64 `yaml:"min_mean,omitempty" json:"min_mean,omitempty"`
	MaxMean          *float64 `yaml:"max_mean,omitempty" json:"max_mean,omitempty"`
}

// Rule pairs a condition with the result it produces.
type Rule struct {
	Name   string    `yaml:"name" json:"name"`
	When   Condition `yaml:"when" json:"when"`
	Result Result    `yaml:"result" json:"result"`
}

// ResultRules is the ordered rule set behind the overall result.
// The first matching rule wins; Fallback applies when none match.
type ResultRules struct {
	Rules    []Rule  `yaml:"rules" json:"rules"`
	Fallback *Result `yaml:"fallback,omitempty" json:"fallback,omitempty"`
}

// Catalog is the static, versioned question set.
type Catalog struct {
	Version   string      `yaml:"version" json:"version"`
	Title     string      `yaml:"title" json:"title"`
	Questions []Question  `yaml:"questions" json:"questions"`
	Results   ResultRules `yaml:"results" json:"results"`
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.Questions)
}

// Question returns the question with the given id.
func (c *Catalog) Question(id int) (Question, bool) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
