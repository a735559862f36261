package models

type Company struct {
	Name        string   `yaml:"name"`
	Wordmark    string   `yaml:"wordmark"`
	Tagline     string   `yaml:"tagline"`
	Blurb       string   `yaml:"blurb"`
	Logo        string   `yaml:"logo"`
	Phone       string   `yaml:"phone"`
	PhoneHours  string   `yaml:"phoneHours"`
	Email       string   `yaml:"email"`
	EmailNote   string   `yaml:"emailNote"`
	Address     []string `yaml:"address"`
	OpeningTime []string `yaml:"openingTimes"`
	Founded     int      `yaml:"founded"`
}

type ServiceOffering struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Image       string   `yaml:"image"`
}

type PortfolioCategory struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// CategoryAll selects every portfolio project.
const CategoryAll = "all"

type PortfolioProject struct {
	ID          string   `yaml:"id"`
	Category    string   `yaml:"category"`
	Title       string   `yaml:"title"`
	Location    string   `yaml:"location"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Image       string   `yaml:"image"`
	Featured    bool     `yaml:"featured"`
}

type Testimonial struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Rating   int    `yaml:"rating"`
	Text     string `yaml:"text"`
	Project  string `yaml:"project"`
	Avatar   string `yaml:"avatar"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Highlight is an icon, heading and short text, used for company values and
// footer certifications.
type Highlight struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type About struct {
	Eyebrow string      `yaml:"eyebrow"`
	Title   string      `yaml:"title"`
	Intro   string      `yaml:"intro"`
	Story   string      `yaml:"story"`
	Image   string      `yaml:"image"`
	Values  []Highlight `yaml:"values"`
}

type FormOptions struct {
	ProjectTypes []string `yaml:"projectTypes"`
	Timelines    []string `yaml:"timelines"`
	Budgets      []string `yaml:"budgets"`
}
