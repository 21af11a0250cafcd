package request

import "photoorders/internal/domain"

type CostumeLineInput struct {
	CostumeID int64   `json:"costume_id" binding:"required"`
	SizeID    int64   `json:"size_id" binding:"required"`
	Additions []int64 `json:"additions"`
}

type KindergartenRequestInput struct {
	KindergartenID      int64              `json:"kindergarten_id" binding:"required"`
	KindergartenClassID int64              `json:"kindergarten_class_id" binding:"required"`
	ChildName           string             `json:"child_name" binding:"required"`
	Costumes            []CostumeLineInput `json:"costumes" binding:"required,min=1,dive"`
	FriendName          string             `json:"friend_name"`
	Remarks             string             `json:"remarks"`
	Additions           []int64            `json:"additions"`
	AdditionalFees      float64            `json:"additional_fees" binding:"gte=0"`
}

func (in KindergartenRequestInput) toDomain() *domain.KindergartenRequest {
	lines := make([]domain.CostumeLine, 0, len(in.Costumes))
	for _, l := range in.Costumes {
		lines = append(lines, domain.CostumeLine{
			CostumeID: l.CostumeID,
			SizeID:    l.SizeID,
			Additions: l.Additions,
		})
	}
	return &domain.KindergartenRequest{
		KindergartenID:      in.KindergartenID,
		KindergartenClassID: in.KindergartenClassID,
		ChildName:           in.ChildName,
		Costumes:            lines,
		FriendName:          in.FriendName,
		Remarks:             in.Remarks,
		Additions:           in.Additions,
		AdditionalFees:      in.AdditionalFees,
	}
}

type ServiceRequestInput struct {
	ClientName     string  `json:"client_name"`
	TypeID         int64   `json:"type_id" binding:"required"`
	ThemeID        *int64  `json:"theme_id"`
	PackageID      int64   `json:"package_id" binding:"required"`
	Appointment    string  `json:"appointment"`
	Remarks        string  `json:"remarks"`
	Additions      []int64 `json:"additions"`
	AdditionalFees float64 `json:"additional_fees" binding:"gte=0"`
}

func (in ServiceRequestInput) toDomain() *domain.ServiceRequest {
	return &domain.ServiceRequest{
		ClientName:     in.ClientName,
		TypeID:         in.TypeID,
		ThemeID:        in.ThemeID,
		PackageID:      in.PackageID,
		Appointment:    in.Appointment,
		Remarks:        in.Remarks,
		Additions:      in.Additions,
		AdditionalFees: in.AdditionalFees,
	}
}

type StatusUpdateInput struct {
	Status string `json:"status" binding:"required"`
}

type BulkStatusInput struct {
	IDs    []int64 `json:"ids" binding:"required,min=1"`
	Status string  `json:"status" binding:"required"`
}

type FeeUpdateInput struct {
	AdditionalFees float64 `json:"additional_fees" binding:"gte=0"`
}
