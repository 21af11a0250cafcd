package domain

import "time"

// AdditionService tells which request family a service addition applies to.
type AdditionService string

const (
	AdditionKindergarten AdditionService = "K"
	AdditionOther        AdditionService = "O"
)

// PaperSize is a print size with an admin-managed price. NetPrice is derived
// from Price and Discount on every write and never accepted from clients.
type PaperSize struct {
	ID        int64     `json:"id"`
	Size      string    `json:"size" validate:"required"`
	Price     float64   `json:"price" validate:"required,gte=0"`
	Discount  float64   `json:"discount" validate:"gte=0,lte=100"`
	NetPrice  float64   `json:"net_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ServiceAddition struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name" validate:"required"`
	Service           AdditionService `json:"service" validate:"required,oneof=K O"`
	Description       string          `json:"description,omitempty"`
	PerItem           bool            `json:"per_item"`
	Conditional       bool            `json:"conditional"`
	NumOfImgCondition *int            `json:"num_of_img_condition,omitempty"`
	Price             float64         `json:"price" validate:"required,gte=0"`
	Discount          float64         `json:"discount" validate:"gte=0,lte=100"`
	NetPrice          float64         `json:"net_price"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type Package struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	Price     float64   `json:"price" validate:"required,gte=0"`
	Discount  float64   `json:"discount" validate:"gte=0,lte=100"`
	NetPrice  float64   `json:"net_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Theme charges a flat AdditionalCharge on top of the package price; it has no
// discount-derived net price of its own.
type Theme struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title" validate:"required"`
	Description      string    `json:"description,omitempty"`
	AdditionalCharge float64   `json:"additional_charge" validate:"gte=0"`
	ImagesPaths      []string  `json:"images_paths,omitempty" gorm:"serializer:json"`
	ShowInStudio     bool      `json:"show_in_studio"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ServiceType groups the themes and packages offered for a studio service.
// It has no pricing role of its own.
type ServiceType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	ThemeBased  bool      `json:"theme_based"`
	Themes      []int64   `json:"themes,omitempty" gorm:"serializer:json"`
	Packages    []int64   `json:"packages,omitempty" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Costume struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title" validate:"required"`
	ImagePath  string    `json:"image_path" validate:"required"`
	Sizes      []int64   `json:"sizes,omitempty" gorm:"serializer:json"`
	Tags       string    `json:"tags,omitempty"`
	WithFriend bool      `json:"with_friend"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type StudioSample struct {
	ID          int64     `json:"id"`
	ImagePath   string    `json:"image_path" validate:"required"`
	Description string    `json:"description,omitempty"`
	Tags        string    `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
