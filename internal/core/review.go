package core

// ReviewMode shapes the focus of the requested feedback.
type ReviewMode string

const (
	ModeStudent   ReviewMode = "student"
	ModeInterview ReviewMode = "interview"
	ModeIndustry  ReviewMode = "industry"
)

// ImplStyle biases how the improved code should be written.
type ImplStyle string

const (
	StyleDefault    ImplStyle = "default"
	StyleFunctional ImplStyle = "functional"
	StyleRecursive  ImplStyle = "recursive"
	StyleFlat       ImplStyle = "flat"
)

// SourceLanguageAuto asks the service to detect the language itself.
const SourceLanguageAuto = "auto"

// TargetLanguageNone is the sentinel the UI sends when no conversion is wanted.
const TargetLanguageNone = "none"

// ReviewRequest carries the user's code and all review options. Every field
// except Code is optional; zero values fall back to documented defaults.
type ReviewRequest struct {
	Code           string     `json:"code"`
	SourceLanguage string     `json:"sourceLanguage,omitempty"`
	TargetLanguage string     `json:"targetLanguage,omitempty"`
	Mode           ReviewMode `json:"mode,omitempty"`
	Style          ImplStyle  `json:"style,omitempty"`
	Model          string     `json:"model,omitempty"`
	ErrorLog       string     `json:"errorLog,omitempty"`
	HouseStyle     string     `json:"houseStyle,omitempty"`
	Verbosity      string     `json:"verbosity,omitempty"`
	Tone           string     `json:"tone,omitempty"`
}

// CodeIssue is a single finding in the reviewed code. Line is zero when the
// issue is not tied to a specific line.
type CodeIssue struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Line        int    `json:"line,omitempty"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
}

// Scores is the fixed set of named sub-scores, each on a 0-10 scale.
type Scores struct {
	Quality          float64 `json:"quality"`
	Readability      float64 `json:"readability"`
	Optimization     float64 `json:"optimization"`
	Security         float64 `json:"security"`
	TechnicalDebt    float64 `json:"technicalDebt"`
	StyleConsistency float64 `json:"styleConsistency"`
}

// Complexity describes the improved code's cost characteristics.
type Complexity struct {
	Time       string `json:"time"`
	Space      string `json:"space"`
	Cyclomatic int    `json:"cyclomatic"`
}

// ReviewResult is the parsed, validated outcome of one review call.
type ReviewResult struct {
	Language      string      `json:"language"`
	Issues        []CodeIssue `json:"issues"`
	OptimizedCode string      `json:"optimizedCode"`
	Explanation   string      `json:"explanation"`
	Documentation string      `json:"documentation"`
	OverallScore  float64     `json:"overallScore"`
	Scores        Scores      `json:"scores"`
	Complexity    Complexity  `json:"complexity"`
}
