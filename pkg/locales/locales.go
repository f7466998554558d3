package locales

import (
	_ "embed"
	"encoding/json"
	"log"
)

//go:embed locales.json
var localesJSON []byte

// Locales содержит все текстовые строки из locales.json
type Locales struct {
	Errors       Errors       `json:"errors"`
	Welcome      Welcome      `json:"welcome"`
	Registration Registration `json:"registration"`
	Summary      Summary      `json:"summary"`
	Calories     Calories     `json:"calories"`
	Goal         Goal         `json:"goal"`
	Diary        Diary        `json:"diary"`
	Food         Food         `json:"food"`
	Favorites    Favorites    `json:"favorites"`
	Reminders    Reminders    `json:"reminders"`
	Edit         Edit         `json:"edit"`
	Reset        Reset        `json:"reset"`
}

type Errors struct {
	NoProfile     string `json:"no_profile"`
	Internal      string `json:"internal"`
	NotRegistered string `json:"not_registered"`
	CalcFailed    string `json:"calc_failed"`
}

type Welcome struct {
	AskName     string `json:"ask_name"`
	Text        string `json:"text"`
	StartButton string `json:"start_button"`
	Help        string `json:"help"`
}

type Registration struct {
	AskGender     string `json:"ask_gender"`
	AskAge        string `json:"ask_age"`
	AgeSaved      string `json:"age_saved"`
	AgeInvalid    string `json:"age_invalid"`
	HeightSaved   string `json:"height_saved"`
	HeightInvalid string `json:"height_invalid"`
	WeightSaved   string `json:"weight_saved"`
	WeightInvalid string `json:"weight_invalid"`
	ActivitySaved string `json:"activity_saved"`
	UseButtons    string `json:"use_buttons"`
	Buttons       struct {
		GenderMale      string `json:"gender_male"`
		GenderFemale    string `json:"gender_female"`
		ActivityMinimal string `json:"activity_minimal"`
		ActivityLow     string `json:"activity_low"`
		ActivityMedium  string `json:"activity_medium"`
		ActivityHigh    string `json:"activity_high"`
		ActivityExtra   string `json:"activity_extra"`
		ConfirmYes      string `json:"confirm_yes"`
		ConfirmEdit     string `json:"confirm_edit"`
	} `json:"buttons"`
}

type Summary struct {
	Text         string `json:"text"`
	Confirm      string `json:"confirm"`
	GenderMale   string `json:"gender_male"`
	GenderFemale string `json:"gender_female"`
	Buttons      struct {
		Delete        string `json:"delete"`
		Edit          string `json:"edit"`
		StartTracking string `json:"start_tracking"`
	} `json:"buttons"`
}

type Calories struct {
	Saved  string `json:"saved"`
	Result string `json:"result"`
}

type Goal struct {
	Choose       string `json:"choose"`
	Saved        string `json:"saved"`
	NameMaintain string `json:"name_maintain"`
	NameLoss     string `json:"name_loss"`
	NameGain     string `json:"name_gain"`
	Buttons      struct {
		Maintain string `json:"maintain"`
		Loss     string `json:"loss"`
		Gain     string `json:"gain"`
	} `json:"buttons"`
}

type Diary struct {
	Summary        string `json:"summary"`
	MotivationLow  string `json:"motivation_low"`
	MotivationGood string `json:"motivation_good"`
	MotivationOver string `json:"motivation_over"`
	MotivationHigh string `json:"motivation_high"`
	NotTracking    string `json:"not_tracking"`
	Continue       string `json:"continue"`
	Buttons        struct {
		AddFood    string `json:"add_food"`
		Summary    string `json:"summary"`
		ChangeGoal string `json:"change_goal"`
		Reminders  string `json:"reminders"`
	} `json:"buttons"`
}

type Food struct {
	InputMethods string `json:"input_methods"`
	ManualPrompt string `json:"manual_prompt"`
	Added        string `json:"added"`
	SearchHeader string `json:"search_header"`
	SearchItem   string `json:"search_item"`
	SearchFooter string `json:"search_footer"`
	AskCalories  string `json:"ask_calories"`
	AskGrams     string `json:"ask_grams"`
	Buttons      struct {
		ManualInput string `json:"manual_input"`
		Favorites   string `json:"favorites"`
	} `json:"buttons"`
}

type Favorites struct {
	Header         string `json:"header"`
	Empty          string `json:"empty"`
	Added          string `json:"added"`
	Suggest        string `json:"suggest"`
	SuggestButton  string `json:"suggest_button"`
	ContinueButton string `json:"continue_button"`
}

type Reminders struct {
	Status   string `json:"status"`
	On       string `json:"on"`
	Off      string `json:"off"`
	SavedOn  string `json:"saved_on"`
	SavedOff string `json:"saved_off"`
	Buttons  struct {
		Morning string `json:"morning"`
		Noon    string `json:"noon"`
		Evening string `json:"evening"`
		Night   string `json:"night"`
		Off     string `json:"off"`
	} `json:"buttons"`
}

type Edit struct {
	Choose    string `json:"choose"`
	Editing   string `json:"editing"`
	Saved     string `json:"saved"`
	AskName   string `json:"ask_name"`
	AskAge    string `json:"ask_age"`
	AskHeight string `json:"ask_height"`
	AskWeight   string `json:"ask_weight"`
	AskActivity string `json:"ask_activity"`
	Buttons     struct {
		Name     string `json:"name"`
		Gender   string `json:"gender"`
		Age      string `json:"age"`
		Height   string `json:"height"`
		Weight   string `json:"weight"`
		Activity string `json:"activity"`
		All      string `json:"all"`
	} `json:"buttons"`
}

type Reset struct {
	Done string `json:"done"`
}

var L *Locales

func init() {
	L = &Locales{}
	if err := json.Unmarshal(localesJSON, L); err != nil {
		log.Fatalf("Не удалось распарсить locales.json: %v", err)
	}
}

// Get возвращает указатель на локали
func Get() *Locales {
	return L
}
