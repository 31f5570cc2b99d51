package service

import (
	"errors"
	"net/http"
	"time"

	"github.com/spec-kit/renewal-service/internal/auth"
	"github.com/spec-kit/renewal-service/internal/config"
	"github.com/spec-kit/renewal-service/internal/domain"
	"github.com/spec-kit/renewal-service/internal/repository"
	apperrors "github.com/spec-kit/renewal-service/pkg/util"
)

// adminSubjectID is the synthetic subject for admin sessions; the admin role
// has no record behind it.
const adminSubjectID = "admin"

// Session is an issued session token with its expiry.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService implements the demo login flows. The only credential anywhere
// is the hardcoded access code; everything else is record lookup.
type AuthService struct {
	cfg       config.AuthConfig
	staff     repository.StaffRepository
	merchants repository.MerchantRepository
	tokens    *auth.TokenManager
}

// AuthDependencies bundles repositories.
type AuthDependencies struct {
	StaffRepo    repository.StaffRepository
	MerchantRepo repository.MerchantRepository
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		cfg:       cfg.Auth,
		staff:     deps.StaffRepo,
		merchants: deps.MerchantRepo,
		tokens:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// LoginAdmin checks the admin access code and issues a session.
func (s *AuthService) LoginAdmin(accessCode string) (Session, error) {
	if accessCode != s.cfg.AdminAccessCode {
		return Session{}, apperrors.NewUnauthorized("专属码错误，请联系管理员")
	}
	return s.issue(adminSubjectID, domain.SubjectTypeAdmin)
}

// LoginStaff checks the staff access code and resolves the roster record by
// exact name match.
func (s *AuthService) LoginStaff(accessCode, name string) (*domain.Staff, Session, error) {
	if accessCode != s.cfg.StaffAccessCode {
		return nil, Session{}, apperrors.NewUnauthorized("专属码错误，请联系管理员")
	}
	staff, err := s.staff.GetByName(name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Session{}, apperrors.NewNotFound("staff", map[string]any{"name": name})
		}
		return nil, Session{}, apperrors.MapError(err)
	}
	session, err := s.issue(staff.ID, domain.SubjectTypeStaff)
	if err != nil {
		return nil, Session{}, err
	}
	return staff, session, nil
}

/// RegisterStaff is the demo "registration" flow: it never creates roster
// entries, it resolves to the first staff member of the chosen district and
// logs the caller in as them.
func (s *AuthService) RegisterStaff(accessCode string, district domain.District) (*domain.Staff, Session, error) {
	if accessCode != s.cfg.StaffAccessCode {
		return nil, Session{}, apperrors.NewUnauthorized("专属码错误，请联系管理员")
	}
	if !domain.ValidDistrict(district) {
		return nil, Session{}, apperrors.NewValidationError("unknown district", map[string]any{"district": district})
	}
	staff, err := s.staff.FirstInArea(district)
	if err != nil {
		return nil, Session{}, apperrors.MapError(err)
	}
	session, err := s.issue(staff.ID, domain.SubjectTypeStaff)
	if err != nil {
		return nil, Session{}, err
	}
	return staff, session, nil
}

// LoginMerchant resolves a merchant by exact license number. A miss is a
// not-found result pointing the caller at their district officer, never a
// fault.
func (s *AuthService) LoginMerchant(licenseNo string) (*domain.Merchant, Session, error) {
	merchant, err := s.merchants.GetByLicenseNo(licenseNo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Session{}, apperrors.NewDomainError(
				"NOT_FOUND", "未找到该证号任务，请联系辖区市场监管员", http.StatusNotFound,
				map[string]any{"license_no": licenseNo})
		}
		return nil, Session{}, apperrors.MapError(err)
	}
	session, err := s.issue(merchant.ID, domain.SubjectTypeMerchant)
	if err != nil {
		return nil, Session{}, err
	}
	return merchant, session, nil
}

// RegisterMerchant resolves the pre-assigned task for a license number and
// returns a copy updated with the submitted contact details. The shared
/// collection is never mutated: the session snapshot is the caller's value.
func (s *AuthService) RegisterMerchant(licenseNo, ownerName, phone string) (*domain.Merchant, Session, error) {
	if ownerName == "" || phone == "" {
		return nil, Session{}, apperrors.NewValidationError("请填写完整信息", nil)
	}
	merchant, session, err := s.LoginMerchant(licenseNo)
	if err != nil {
		return nil, Session{}, err
	}
	updated := merchant.Clone()
	updated.OwnerName = ownerName
	updated.Phone = phone
	return &updated, session, nil
}

func (s *AuthService) issue(subjectID string, subject domain.SubjectType) (Session, error) {
	token, expiresAt, err := s.tokens.GenerateToken(subjectID, subject)
	if err != nil {
		return Session{}, apperrors.MapError(err)
	}
	return Session{Token: token, ExpiresAt: expiresAt}, nil
}
