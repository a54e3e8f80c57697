// internal/service/ad/service_test.go
package ad

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	addomain "github.com/tradeyardgit/TradeYard/internal/domain/ad"
	"github.com/tradeyardgit/TradeYard/internal/domain/catalog"
	xerrors "github.com/tradeyardgit/TradeYard/internal/pkg/errors"
)

func catalogOnlyService() *AdService {
	return &AdService{catalog: catalog.Default(), logger: zap.NewNop()}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func phoneAd() *addomain.Ad {
	return &addomain.Ad{
		ID:          "01J0000000000000000000PHNE",
		SellerID:    7,
		Title:       "iPhone 13 Pro Max 256GB",
		CategoryID:  "electronics",
		Subcategory: sql.NullString{String: "Phones & Tablets", Valid: true},
		LocationID:  "ikeja",
		Status:      addomain.AdStatusActive,
	}
}

func TestValidateUpdateFieldsAcceptsMatchingSubcategory(t *testing.T) {
	svc := catalogOnlyService()

	err := svc.validateUpdateFields(phoneAd(), &addomain.UpdateAdRequest{
		Subcategory: strPtr("Computers & Laptops"),
	})
	assert.NoError(t, err)
}

func TestValidateUpdateFieldsRejectsForeignSubcategory(t *testing.T) {
	svc := catalogOnlyService()

	err := svc.validateUpdateFields(phoneAd(), &addomain.UpdateAdRequest{
		Subcategory: strPtr("Cars"),
	})
	require.ErrorIs(t, err, xerrors.ErrInvalidInput)
}

func TestValidateUpdateFieldsRejectsStaleSubcategoryOnCategoryChange(t *testing.T) {
	svc := catalogOnlyService()

	// Changing only the category would leave "Phones & Tablets" attached to
	// a vehicles listing.
	err := svc.validateUpdateFields(phoneAd(), &addomain.UpdateAdRequest{
		CategoryID: strPtr("vehicles"),
	})
	require.ErrorIs(t, err, xerrors.ErrInvalidInput)

	// Moving category and subcategory together is fine.
	err = svc.validateUpdateFields(phoneAd(), &addomain.UpdateAdRequest{
		CategoryID:  strPtr("vehicles"),
		Subcategory: strPtr("Cars"),
	})
	assert.NoError(t, err)

	// So is clearing the subcategory on the way.
	err = svc.validateUpdateFields(phoneAd(), &addomain.UpdateAdRequest{
		CategoryID:  strPtr("vehicles"),
		Subcategory: strPtr(""),
	})
	assert.NoError(t, err)
}

func TestValidateUpdateFieldsSubcategoryIsCaseSensitive(t *testing.T) {
	svc := catalogOnlyService()

	err := svc.validateUpdateFields(phoneAd(), &addomain.UpdateAdRequest{
		Subcategory: strPtr("phones & tablets"),
	})
	require.ErrorIs(t, err, xerrors.ErrInvalidInput)
}

func TestCreateAdClearsFeaturedForSellers(t *testing.T) {
	svc := catalogOnlyService()

	// No images, so the call errors out before reaching storage.
	req := &addomain.CreateAdRequest{
		Title:       "iPhone 13 Pro Max 256GB",
		Description: "Clean phone, no scratches at all",
		Price:       650000,
		CategoryID:  "electronics",
		Subcategory: "Phones & Tablets",
		LocationID:  "ikeja",
		Condition:   "New",
		Featured:    true,
	}

	_, err := svc.CreateAd(context.Background(), 7, false, req)
	require.ErrorIs(t, err, xerrors.ErrInvalidInput)
	assert.False(t, req.Featured, "seller request kept the featured flag")

	req.Featured = true
	_, err = svc.CreateAd(context.Background(), 7, true, req)
	require.ErrorIs(t, err, xerrors.ErrInvalidInput)
	assert.True(t, req.Featured, "admin request lost the featured flag")
}

func TestDropModerationFields(t *testing.T) {
	status := addomain.AdStatusSold
	req := &addomain.UpdateAdRequest{
		Title:    strPtr("Slightly used phone"),
		Featured: boolPtr(true),
		Status:   &status,
	}

	dropModerationFields(req)

	assert.Nil(t, req.Featured)
	assert.Nil(t, req.Status)
	assert.NotNil(t, req.Title)
}
