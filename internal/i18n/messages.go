package i18n

// Messages is the full set of translated copy for one locale.
type Messages struct {
	SEO        SEOMessages        `yaml:"seo"`
	Nav        NavMessages        `yaml:"nav"`
	Hero       HeroMessages       `yaml:"hero"`
	Product    ProductMessages    `yaml:"product"`
	Calculator CalculatorMessages `yaml:"calculator"`
	Contact    ContactMessages    `yaml:"contact"`
	Modal      ModalMessages      `yaml:"modal"`
	Club       ClubMessages       `yaml:"club"`
	Player     PlayerMessages     `yaml:"player"`
	Pricing    PricingMessages    `yaml:"pricing"`
	Footer     FooterMessages     `yaml:"footer"`
	Errors     ErrorMessages      `yaml:"errors"`
}

type SEOMessages struct {
	Title        string `yaml:"title" validate:"required"`
	Description  string `yaml:"description" validate:"required"`
	ClubTitle    string `yaml:"clubTitle" validate:"required"`
	PlayerTitle  string `yaml:"playerTitle" validate:"required"`
	PricingTitle string `yaml:"pricingTitle" validate:"required"`
	Keywords     string `yaml:"keywords"`
}

type NavMessages struct {
	Product      string `yaml:"product" validate:"required"`
	ClubSystem   string `yaml:"clubSystem" validate:"required"`
	PlayerSystem string `yaml:"playerSystem" validate:"required"`
	Pricing      string `yaml:"pricing" validate:"required"`
	Trial        string `yaml:"trial" validate:"required"`
	Language     string `yaml:"language" validate:"required"`
	Home         string `yaml:"home" validate:"required"`
}

type HeroMessages struct {
	Tag         string `yaml:"tag" validate:"required"`
	Title1      string `yaml:"title1" validate:"required"`
	Title2      string `yaml:"title2" validate:"required"`
	Desc        string `yaml:"desc" validate:"required"`
	Card1Title  string `yaml:"card1Title" validate:"required"`
	Card1Desc   string `yaml:"card1Desc" validate:"required"`
	Card2Title  string `yaml:"card2Title" validate:"required"`
	Card2Desc   string `yaml:"card2Desc" validate:"required"`
	ShowcaseAlt string `yaml:"showcaseAlt" validate:"required"`
}

// Module is one entry of a tabbed solution list. Desc is markdown.
type Module struct {
	Name     string `yaml:"name" validate:"required"`
	Subtitle string `yaml:"subtitle"`
	Desc     string `yaml:"desc" validate:"required"`
}

type ProductMessages struct {
	Tag      string   `yaml:"tag" validate:"required"`
	Title    string   `yaml:"title" validate:"required"`
	Subtitle string   `yaml:"subtitle" validate:"required"`
	Demo     string   `yaml:"demo" validate:"required"`
	Modules  []Module `yaml:"modules" validate:"len=5,dive"`
}

type CalculatorMessages struct {
	Tag          string   `yaml:"tag" validate:"required"`
	Title1       string   `yaml:"title1" validate:"required"`
	GroupOps     string   `yaml:"groupOps" validate:"required"`
	BtnRun       string   `yaml:"btnRun" validate:"required"`
	BtnReset     string   `yaml:"btnReset" validate:"required"`
	Placeholder  string   `yaml:"placeholder" validate:"required"`
	ResultTitle  string   `yaml:"resultTitle" validate:"required"`
	ResultMoney  string   `yaml:"resultMoney" validate:"required"`
	ResultHours  string   `yaml:"resultHours" validate:"required"`
	ResultRisk   string   `yaml:"resultRisk" validate:"required"`
	ResultGrowth string   `yaml:"resultGrowth" validate:"required"`
	RiskHigh     string   `yaml:"riskHigh" validate:"required"`
	ResultFooter string   `yaml:"resultFooter" validate:"required"`
	PainPoints   []string `yaml:"painPoints" validate:"len=4,dive,required"`
}

type ContactMessages struct {
	Title1   string `yaml:"title1" validate:"required"`
	Desc     string `yaml:"desc" validate:"required"`
	BtnTrial string `yaml:"btnTrial" validate:"required"`
}

type ModalMessages struct {
	Title              string `yaml:"title" validate:"required"`
	Desc               string `yaml:"desc" validate:"required"`
	TitleSubscription  string `yaml:"titleSubscription" validate:"required,contains={plan}"`
	DescSubscription   string `yaml:"descSubscription" validate:"required"`
	PlaceholderBrand   string `yaml:"placeholderBrand" validate:"required"`
	PlaceholderContact string `yaml:"placeholderContact" validate:"required"`
	PlaceholderPhone   string `yaml:"placeholderPhone" validate:"required"`
	BtnSubmit          string `yaml:"btnSubmit" validate:"required"`
	BtnSubscribe       string `yaml:"btnSubscribe" validate:"required"`
	BtnClose           string `yaml:"btnClose" validate:"required"`
	ThanksTitle        string `yaml:"thanksTitle" validate:"required"`
	ThanksDesc         string `yaml:"thanksDesc" validate:"required"`
	ErrRequired        string `yaml:"errRequired" validate:"required"`
	ErrTooLong         string `yaml:"errTooLong" validate:"required"`
	ErrPhone           string `yaml:"errPhone" validate:"required"`
}

// Highlight is a short feature card.
type Highlight struct {
	Title string `yaml:"title" validate:"required"`
	Desc  string `yaml:"desc" validate:"required"`
}

type ClubMessages struct {
	HeroTag         string      `yaml:"heroTag" validate:"required"`
	HeroTitle       string      `yaml:"heroTitle" validate:"required"`
	HeroDesc        string      `yaml:"heroDesc" validate:"required"`
	SolutionsTitle  string      `yaml:"solutionsTitle" validate:"required"`
	Modules         []Module    `yaml:"modules" validate:"min=1,dive"`
	HighlightsTitle string      `yaml:"highlightsTitle" validate:"required"`
	Highlights      []Highlight `yaml:"highlights" validate:"min=1,dive"`
	CtaTitle        string      `yaml:"ctaTitle" validate:"required"`
	CtaButton       string      `yaml:"ctaButton" validate:"required"`
}

// FAQ is a question with a markdown answer.
type FAQ struct {
	Q string `yaml:"q" validate:"required"`
	A string `yaml:"a" validate:"required"`
}

type PlayerMessages struct {
	HeroTag              string   `yaml:"heroTag" validate:"required"`
	HeroTitle            string   `yaml:"heroTitle" validate:"required"`
	HeroDesc             string   `yaml:"heroDesc" validate:"required"`
	VideoSectionTitle    string   `yaml:"videoSectionTitle" validate:"required"`
	VideoSectionSubtitle string   `yaml:"videoSectionSubtitle" validate:"required"`
	VideoPlaceholder     string   `yaml:"videoPlaceholder" validate:"required"`
	SolutionsTitle       string   `yaml:"solutionsTitle" validate:"required"`
	Modules              []Module `yaml:"modules" validate:"len=5,dive"`
	FaqTitle             string   `yaml:"faqTitle" validate:"required"`
	Faqs                 []FAQ    `yaml:"faqs" validate:"min=1,dive"`
}

// Plan is one column of the pricing grid. AnnualPrice and Avg are optional.
type Plan struct {
	Name        string   `yaml:"name" validate:"required"`
	Tag         string   `yaml:"tag"`
	Desc        string   `yaml:"desc" validate:"required"`
	Price       int64    `yaml:"price" validate:"gte=0"`
	AnnualPrice *int64   `yaml:"annualPrice,omitempty" validate:"omitempty,gte=0"`
	Avg         *int64   `yaml:"avg,omitempty" validate:"omitempty,gte=0"`
	Features    []string `yaml:"features" validate:"min=1,dive,required"`
}

// Plans keys the grid by stable plan identifier.
type Plans struct {
	Free       Plan `yaml:"free"`
	Starter    Plan `yaml:"starter"`
	Pro        Plan `yaml:"pro"`
	Enterprise Plan `yaml:"enterprise"`
}

type Addon struct {
	Name  string `yaml:"name" validate:"required"`
	Price string `yaml:"price" validate:"required"`
}

type Addons struct {
	Title string  `yaml:"title" validate:"required"`
	Items []Addon `yaml:"items" validate:"len=3,dive"`
	Note  string  `yaml:"note" validate:"required"`
}

// CompareRow is one line of the comparison table, one cell per plan.
type CompareRow struct {
	Label      string `yaml:"label" validate:"required"`
	Free       string `yaml:"free" validate:"required"`
	Starter    string `yaml:"starter" validate:"required"`
	Pro        string `yaml:"pro" validate:"required"`
	Enterprise string `yaml:"enterprise" validate:"required"`
}

type PricingMessages struct {
	Tag            string       `yaml:"tag" validate:"required"`
	Title          string       `yaml:"title" validate:"required"`
	Subtitle       string       `yaml:"subtitle" validate:"required"`
	ToggleMonthly  string       `yaml:"toggleMonthly" validate:"required"`
	ToggleAnnually string       `yaml:"toggleAnnually" validate:"required"`
	OffTag         string       `yaml:"offTag" validate:"required"`
	MostPopular    string       `yaml:"mostPopular" validate:"required"`
	YearUnit       string       `yaml:"yearUnit" validate:"required"`
	MonthUnit      string       `yaml:"monthUnit" validate:"required"`
	AvgMonth       string       `yaml:"avgMonth" validate:"required"`
	CtaFree        string       `yaml:"ctaFree" validate:"required"`
	CtaPaid        string       `yaml:"ctaPaid" validate:"required"`
	ShowDetail     string       `yaml:"showDetail" validate:"required"`
	HideDetail     string       `yaml:"hideDetail" validate:"required"`
	CompareTitle   string       `yaml:"compareTitle" validate:"required"`
	CompareFeature string       `yaml:"compareFeature" validate:"required"`
	Compare        []CompareRow `yaml:"compare" validate:"min=1,dive"`
	Plans          Plans        `yaml:"plans"`
	Addons         Addons       `yaml:"addons"`
}

type FooterMessages struct {
	Copyright string `yaml:"copyright" validate:"required"`
	Tagline   string `yaml:"tagline" validate:"required"`
	Community string `yaml:"community" validate:"required"`
	Contact   string `yaml:"contact" validate:"required"`
	Security  string `yaml:"security" validate:"required"`
}

type ErrorMessages struct {
	NotFoundTitle string `yaml:"notFoundTitle" validate:"required"`
	NotFoundDesc  string `yaml:"notFoundDesc" validate:"required"`
	BackHome      string `yaml:"backHome" validate:"required"`
	Forbidden     string `yaml:"forbidden" validate:"required"`
}
