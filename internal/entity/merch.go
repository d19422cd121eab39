package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DesignMemberExclusive = "member-exclusive"
	DesignClassic         = "classic-design"
	DesignModern          = "modern-design"

	PaymentStatusPending = "pending"
)

var Departments = []string{"Logistics", "Events", "Marketing", "Media", "Design", "Tech"}

var TshirtSizes = []string{"S", "M", "L", "XL", "XXL"}

type TshirtDesign struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description"`
	MembersOnly bool   `json:"membersOnly"`
}

var TshirtDesigns = []TshirtDesign{
	{Name: "Member Exclusive", Value: DesignMemberExclusive, Description: "Exclusive design for club members only", MembersOnly: true},
	{Name: "Classic Design", Value: DesignClassic, Description: "Available for everyone"},
	{Name: "Modern Design", Value: DesignModern, Description: "Available for everyone"},
}

// MerchOrderInput is a t-shirt order as submitted through the order form.
type MerchOrderInput struct {
	IsMember     bool   `json:"isMember" bson:"isMember"`
	Name         string `json:"name" bson:"name" validate:"min=2"`
	RegNo        string `json:"regNo" bson:"regNo" validate:"regno"`
	Email        string `json:"email" bson:"email" validate:"email"`
	Phone        string `json:"phone" bson:"phone" validate:"min=10,merchphone"`
	Department   string `json:"department" bson:"department" validate:"oneof=Logistics Events Marketing Media Design Tech"`
	TshirtDesign string `json:"tshirtDesign" bson:"tshirtDesign" validate:"oneof=member-exclusive classic-design modern-design"`
	Size         string `json:"size" bson:"size" validate:"oneof=S M L XL XXL"`
}

// MerchOrder is the document stored in the merch_orders collection.
type MerchOrder struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	MerchOrderInput `bson:",inline"`
	Amount          int       `json:"amount" bson:"amount"`
	SubmittedAt     time.Time `json:"submittedAt" bson:"submittedAt"`
	PaymentStatus   string    `json:"paymentStatus" bson:"paymentStatus"`
}

func NewMerchOrder(in *MerchOrderInput, amount int, submittedAt time.Time) *MerchOrder {
	return &MerchOrder{
		MerchOrderInput: *in,
		Amount:          amount,
		SubmittedAt:     submittedAt,
		PaymentStatus:   PaymentStatusPending,
	}
}

// DesignAllowed reports whether the chosen design is open to the buyer.
// Members may pick any design; the exclusive design is reserved for members.
func (in *MerchOrderInput) DesignAllowed() bool {
	return in.IsMember || in.TshirtDesign != DesignMemberExclusive
}
