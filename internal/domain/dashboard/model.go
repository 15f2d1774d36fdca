package dashboard

// Status del anillo de calorías.
type Status string

const (
	StatusOnTrack   Status = "on_track"   // < 80%
	StatusNearLimit Status = "near_limit" // <= 100%
	StatusOver      Status = "over"
)

type MacroProgress struct {
	Name    string `json:"name"`
	Current int    `json:"current"`
	Target  int    `json:"target"`
	Percent int    `json:"percent"` // tope 100
}

type Meal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Time     string  `json:"time"`
}

type Summary struct {
	Greeting    string `json:"greeting"`
	DisplayName string `json:"display_name"`
	DateLabel   string `json:"date_label"`

	CalorieTarget   int    `json:"calorie_target"`
	Consumed        int    `json:"consumed"`
	Remaining       int    `json:"remaining"`
	ProgressPercent int    `json:"progress_percent"`
	Status          Status `json:"status"`

	Macros []MacroProgress `json:"macros"`
	Meals  []Meal          `json:"meals"`
}
