package domain

// Catalog categories are fixed; the storefront has no category management UI.
var ProductCategories = []string{"Blankets", "Toys", "Apparel", "Accessories"}

type Product struct {
	ID           string   `db:"id" json:"id"`
	Name         string   `db:"name" json:"name"`
	Description  string   `db:"description" json:"description"`
	Price        float64  `db:"price" json:"price"`
	Category     string   `db:"category" json:"category"`
	ImagesJSON   string   `db:"images_json" json:"-"`
	Images       []string `db:"-" json:"images"`
	InStock      bool     `db:"in_stock" json:"inStock"`
	Discount     float64  `db:"discount" json:"discount"`
	DaysToMake   int      `db:"days_to_make" json:"daysToMake"`
	ShippingCost float64  `db:"shipping_cost" json:"shippingCost"`
	CreatedAt    string   `db:"created_at" json:"createdAt"`
	UpdatedAt    string   `db:"updated_at" json:"updatedAt,omitempty"`
}

// EffectivePrice applies the discount percentage to the list price.
func (p Product) EffectivePrice() float64 {
	if p.Discount <= 0 {
		return p.Price
	}
	return p.Price * (1 - p.Discount/100)
}

// OrderItem is a frozen copy of the product at placement time. Later edits or
// deletion of the product must not change placed orders, so there is no FK.
type OrderItem struct {
	OrderID      string  `db:"order_id" json:"-"`
	ProductID    string  `db:"product_id" json:"productId"`
	Name         string  `db:"name" json:"name"`
	Price        float64 `db:"price" json:"price"` // discount-adjusted unit price
	Quantity     int     `db:"quantity" json:"quantity"`
	ShippingCost float64 `db:"shipping_cost" json:"shippingCost"`
	DaysToMake   int     `db:"days_to_make" json:"daysToMake"`
}

type Order struct {
	ID              string      `db:"id" json:"id"`
	UserID          string      `db:"user_id" json:"userId"`
	UserName        string      `db:"user_name" json:"userName"`
	ContactEmail    string      `db:"contact_email" json:"contactEmail"`
	ShippingAddress string      `db:"shipping_address" json:"shippingAddress"`
	Items           []OrderItem `db:"-" json:"items"`
	TotalAmount     float64     `db:"total_amount" json:"totalAmount"`
	ShippingTotal   float64     `db:"shipping_total" json:"shippingTotal"`
	SpecialRequest  string      `db:"special_request" json:"specialRequest,omitempty"`
	Status          OrderStatus `db:"status" json:"status"`
	CreatedAt       string      `db:"created_at" json:"createdAt"`
	UpdatedAt       string      `db:"updated_at" json:"updatedAt,omitempty"`
}

// ShortCode is the human-friendly id used in notification messages.
func (o Order) ShortCode() string {
	if len(o.ID) <= 6 {
		return o.ID
	}
	return o.ID[len(o.ID)-6:]
}

type Review struct {
	ID        string `db:"id" json:"id"`
	ProductID string `db:"product_id" json:"productId"`
	UserID    string `db:"user_id" json:"userId"`
	UserName  string `db:"user_name" json:"userName"`
	Rating    int    `db:"rating" json:"rating"`
	Comment   string `db:"comment" json:"comment"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}

// Settings is a singleton row, lazily created with these defaults.
type Settings struct {
	StoreName     string `db:"store_name" json:"storeName"`
	OwnerName     string `db:"owner_name" json:"ownerName"`
	ContactEmail  string `db:"contact_email" json:"contactEmail"`
	ContactPhone  string `db:"contact_phone" json:"contactPhone"`
	ShopLocation  string `db:"shop_location" json:"shopLocation"`
	LogoURL       string `db:"logo_url" json:"logoUrl"`
	InstagramURL  string `db:"instagram_url" json:"instagramUrl,omitempty"`
	TiktokURL     string `db:"tiktok_url" json:"tiktokUrl,omitempty"`
	YoutubeURL    string `db:"youtube_url" json:"youtubeUrl,omitempty"`
	CopyrightText string `db:"copyright_text" json:"copyrightText"`
	UpdatedAt     string `db:"updated_at" json:"updatedAt,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		StoreName:     "Bubbly Crochet",
		OwnerName:     "Store Owner",
		ContactEmail:  "contact@bubblycrochet.com",
		ContactPhone:  "+1 (555) 000-0000",
		ShopLocation:  "Made with love",
		LogoURL:       "https://ui-avatars.com/api/?name=BC&background=d946ef&color=fff",
		CopyrightText: "© 2024 Bubbly Crochet. All rights reserved.",
	}
}

var JourneyCategories = []string{"styles", "tools", "resources", "stores"}

type JourneyResource struct {
	ID           string `db:"id" json:"id"`
	Title        string `db:"title" json:"title"`
	Description  string `db:"description" json:"description"`
	URL          string `db:"url" json:"url"`
	ThumbnailURL string `db:"thumbnail_url" json:"thumbnailUrl"`
	Category     string `db:"category" json:"category"`
	CreatedAt    string `db:"created_at" json:"createdAt"`
	UpdatedAt    string `db:"updated_at" json:"updatedAt,omitempty"`
}

const (
	NotifOrder  = "ORDER"
	NotifSystem = "SYSTEM"
	NotifInfo   = "INFO"

	// AdminFeed is the shared recipient id for the admin console.
	AdminFeed = "admin"
)

type Notification struct {
	ID          string `db:"id" json:"id"`
	RecipientID string `db:"recipient_id" json:"recipientId"`
	Message     string `db:"message" json:"message"`
	Type        string `db:"type" json:"type"`
	Read        bool   `db:"read" json:"read"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
}
