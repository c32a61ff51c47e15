package models

type AdType string

const (
	AdTextBanner      AdType = "TEXT_BANNER"
	AdMediaVertical   AdType = "MEDIA_VERTICAL"
	AdMediaHorizontal AdType = "MEDIA_HORIZONTAL"
)

func (t AdType) Valid() bool {
	switch t {
	case AdTextBanner, AdMediaVertical, AdMediaHorizontal:
		return true
	}
	return false
}

type PaymentState string

const (
	PaymentPending   PaymentState = "PENDING"
	PaymentCompleted PaymentState = "COMPLETED"
	PaymentFailed    PaymentState = "FAILED"
)

func (s PaymentState) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

// Ad is an advertisement as the backend views it.
type Ad struct {
	ID            string       `json:"id"`
	Content       string       `json:"content"`
	Type          AdType       `json:"type"`
	ContentType   string       `json:"contentType"`
	ExternalMedia bool         `json:"externalMedia"`
	URLContent    string       `json:"urlContent"`
	Active        bool         `json:"active"`
	Description   string       `json:"description"`
	CinemaID      string       `json:"cinemaId"`
	UserID        string       `json:"userId"`
	PaymentState  PaymentState `json:"paymentState"`
	PaidAt        Timestamp    `json:"paidAt"`
	Price         float64      `json:"price"`
	AddExpiration Timestamp    `json:"addExpiration"`
	CreatedAt     Timestamp    `json:"createdAt"`
	UpdatedAt     Timestamp    `json:"updatedAt"`
}

// AdFilter narrows /v1/adds/search. Nil fields are left out of the query.
type AdFilter struct {
	Type         *AdType       `mapstructure:"type"`
	PaymentState *PaymentState `mapstructure:"paymentState"`
	Active       *bool         `mapstructure:"active"`
	CinemaID     *string       `mapstructure:"cinemaId"`
	UserID       *string       `mapstructure:"userId"`
}

type CreateAdUpload struct {
	Content        string
	Type           AdType
	Description    string
	CinemaID       string
	URLContent     string
	UserID         string
	DurationDaysID string
	File           *Upload
}

// UpdateAdUpload replaces the editable fields of an ad. File is optional.
type UpdateAdUpload struct {
	Content     string
	Description string
	URLContent  string
	File        *Upload
}

type BoughtAdsQuery struct {
	From       string `json:"from" mapstructure:"from"`
	To         string `json:"to" mapstructure:"to"`
	AddType    AdType `json:"addType,omitempty" mapstructure:"addType"`
	PeriodFrom string `json:"periodFrom,omitempty" mapstructure:"periodFrom"`
	PeriodTo   string `json:"periodTo,omitempty" mapstructure:"periodTo"`
}

type AdvertiserEarningsQuery struct {
	From   string `json:"from" mapstructure:"from"`
	To     string `json:"to" mapstructure:"to"`
	UserID string `json:"userId,omitempty" mapstructure:"userId"`
}

type AdvertiserEarningsLine struct {
	ID            string    `json:"id"`
	Type          AdType    `json:"type"`
	PaidAt        Timestamp `json:"paidAt"`
	Price         float64   `json:"price"`
	AddExpiration Timestamp `json:"addExpiration"`
	UserFullName  string    `json:"userFullName"`
}

type AdvertiserEarningsReport struct {
	Adds           []AdvertiserEarningsLine `json:"adds"`
	TotalGanancias float64                  `json:"totalGanancias"`
}
