package usecase

import (
	"time"

	"github.com/rqapp/rq-mobile-api/internal/domain"
)

type BillingUsecase struct{}

func NewBillingUsecase() *BillingUsecase { return &BillingUsecase{} }

// VerifyReceipt reports success and grants premium for 30 days no matter
// what receipt data was submitted.
func (u *BillingUsecase) VerifyReceipt(_ string, _ *string) domain.ReceiptVerification {
	return domain.ReceiptVerification{
		Success: true,
		Subscription: domain.Subscription{
			Tier:         domain.TierPremium,
			ExpiresAt:    time.Now().UTC().Add(subscriptionWindow),
			AutoRenewing: true,
		},
		Message: "Subscription activated",
	}
}
