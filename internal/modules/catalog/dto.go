package catalog

type PaperSizeInput struct {
	Size     string  `json:"size" binding:"required"`
	Price    float64 `json:"price" binding:"required,gte=0"`
	Discount float64 `json:"discount" binding:"gte=0,lte=100"`
}

type ServiceAdditionInput struct {
	Name              string  `json:"name" binding:"required"`
	Service           string  `json:"service" binding:"required,oneof=K O k o"`
	Description       string  `json:"description"`
	PerItem           bool    `json:"per_item"`
	Conditional       bool    `json:"conditional"`
	NumOfImgCondition *int    `json:"num_of_img_condition"`
	Price             float64 `json:"price" binding:"required,gte=0"`
	Discount          float64 `json:"discount" binding:"gte=0,lte=100"`
}

type PackageInput struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Price    float64 `json:"price" binding:"required,gte=0"`
	Discount float64 `json:"discount" binding:"gte=0,lte=100"`
}

type ThemeInput struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	AdditionalCharge float64  `json:"additional_charge" binding:"gte=0"`
	ImagesPaths      []string `json:"images_paths"`
	ShowInStudio     bool     `json:"show_in_studio"`
}

type ServiceTypeInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Thumbnail   string  `json:"thumbnail"`
	ThemeBased  bool    `json:"theme_based"`
	Themes      []int64 `json:"themes"`
	Packages    []int64 `json:"packages"`
}

type CostumeInput struct {
	Title      string  `json:"title" binding:"required"`
	ImagePath  string  `json:"image_path" binding:"required"`
	Sizes      []int64 `json:"sizes"`
	Tags       string  `json:"tags"`
	WithFriend bool    `json:"with_friend"`
}

type StudioSampleInput struct {
	ImagePath   string `json:"image_path" binding:"required"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
}
