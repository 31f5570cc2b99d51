package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/renewal-service/internal/domain"
	"github.com/spec-kit/renewal-service/internal/repository"
)

func newIntakeService(staff []domain.Staff, merchants []domain.Merchant) (*IntakeService, repository.MerchantRepository) {
	repo := repository.NewMerchantRepository(merchants)
	return NewIntakeService(IntakeDependencies{
		MerchantRepo: repo,
		StaffRepo:    repository.NewStaffRepository(staff),
	}), repo
}

func validIntakeInput() IntakeInput {
	return IntakeInput{
		Name:       "平安烟酒店",
		LicenseNo:  "410788880001",
		OwnerName:  "陈国平",
		Address:    "新乡市牧野区人民路66号",
		Phone:      "13700006666",
		ExpireDate: "2026-02-10",
		District:   domain.DistrictMuye,
	}
}

func TestCreateMerchantAutoAssignsLeastLoaded(t *testing.T) {
	staff := []domain.Staff{
		{ID: "s1", Name: "李明", Area: domain.DistrictMuye},
		{ID: "s2", Name: "王芳", Area: domain.DistrictMuye},
	}
	merchants := []domain.Merchant{
		mkMerchant("a", domain.DistrictMuye, domain.StatusPending, "2026-01-20", "s1"),
		mkMerchant("b", domain.DistrictMuye, domain.StatusVisited, "2026-01-21", "s1"),
		mkMerchant("c", domain.DistrictMuye, domain.StatusCompleted, "2025-06-01", "s2"),
	}
	svc, repo := newIntakeService(staff, merchants)

	created, err := svc.CreateMerchant(context.Background(), validIntakeInput())
	require.NoError(t, err)
	assert.Equal(t, "s2", created.StaffID, "completed tasks do not count as load")
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, 26, created.DaysRemaining)
	require.Len(t, created.History, 1)
	assert.Equal(t, "已录入", created.History[0].Action)

	stored, err := repo.GetByLicenseNo("410788880001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
}

func TestCreateMerchantTiesBreakByRosterOrder(t *testing.T) {
	staff := []domain.Staff{
		{ID: "s1", Name: "李明", Area: domain.DistrictMuye},
		{ID: "s2", Name: "王芳", Area: domain.DistrictMuye},
	}
	svc, _ := newIntakeService(staff, nil)

	created, err := svc.CreateMerchant(context.Background(), validIntakeInput())
	require.NoError(t, err)
	assert.Equal(t, "s1", created.StaffID)
}

func TestCreateMerchantExplicitAssignee(t *testing.T) {
	staff := []domain.Staff{
		{ID: "s1", Name: "李明", Area: domain.DistrictMuye},
		{ID: "s2", Name: "王芳", Area: domain.DistrictHongqi},
	}
	svc, _ := newIntakeService(staff, nil)

	input := validIntakeInput()
	input.StaffName = "李明"
	created, err := svc.CreateMerchant(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "s1", created.StaffID)

	// the named assignee must belong to the merchant's district
	input = validIntakeInput()
	input.StaffName = "王芳"
	_, err = svc.CreateMerchant(context.Background(), input)
	assertDomainErrorCode(t, err, "CONFLICT")

	input = validIntakeInput()
	input.StaffName = "不存在的人"
	_, err = svc.CreateMerchant(context.Background(), input)
	assertDomainErrorCode(t, err, "NOT_FOUND")
}

func TestCreateMerchantValidation(t *testing.T) {
	staff := []domain.Staff{{ID: "s1", Name: "李明", Area: domain.DistrictMuye}}
	svc, _ := newIntakeService(staff, nil)
	ctx := context.Background()

	input := validIntakeInput()
	input.Name = ""
	_, err := svc.CreateMerchant(ctx, input)
	assertDomainErrorCode(t, err, "VALIDATION_FAILED")

	input = validIntakeInput()
	input.District = domain.District("朝阳")
	_, err = svc.CreateMerchant(ctx, input)
	assertDomainErrorCode(t, err, "VALIDATION_FAILED")

	input = validIntakeInput()
	input.ExpireDate = "10/02/2026"
	_, err = svc.CreateMerchant(ctx, input)
	assertDomainErrorCode(t, err, "VALIDATION_FAILED")
}

func TestCreateMerchantRejectsDuplicateLicense(t *testing.T) {
	staff := []domain.Staff{{ID: "s1", Name: "李明", Area: domain.DistrictMuye}}
	svc, _ := newIntakeService(staff, nil)
	ctx := context.Background()

	_, err := svc.CreateMerchant(ctx, validIntakeInput())
	require.NoError(t, err)

	_, err = svc.CreateMerchant(ctx, validIntakeInput())
	assertDomainErrorCode(t, err, "CONFLICT")
}

func TestCreateMerchantNoStaffInDistrict(t *testing.T) {
	svc, _ := newIntakeService(nil, nil)

	_, err := svc.CreateMerchant(context.Background(), validIntakeInput())
	assertDomainErrorCode(t, err, "CONFLICT")
}
