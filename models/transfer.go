package models

import (
	"time"

	"gorm.io/gorm"
)

// TransferStatus tracks an ownership transfer through review.
type TransferStatus string

const (
	TransferStatusPending  TransferStatus = "pending"
	TransferStatusApproved TransferStatus = "approved"
	TransferStatusRejected TransferStatus = "rejected"
)

// OwnershipTransfer records one change of holder on a parcel. Fee and
// penalty figures live with the finance system, not here.
type OwnershipTransfer struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	LandRecordID uint           `gorm:"not null;index" json:"landRecordId"`
	LandRecord   *LandRecord    `gorm:"foreignKey:LandRecordID" json:"-"`
	FromOwner    string         `gorm:"size:150;not null" json:"fromOwner"`
	ToOwner      string         `gorm:"size:150;not null" json:"toOwner"`
	TransferType string         `gorm:"size:50;not null" json:"transferType"` // sale, inheritance, gift, court order
	ReferenceNo  string         `gorm:"size:50;uniqueIndex;not null" json:"referenceNo"`
	Status       TransferStatus `gorm:"size:20;not null;default:pending;index" json:"status"`
	ApprovedAt   *time.Time     `json:"approvedAt,omitempty"`
	Remarks      *string        `gorm:"size:500" json:"remarks,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
