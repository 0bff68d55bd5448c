package account

import (
	"context"
	"crypto/subtle"
	"strconv"
	"strings"

	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/auth"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/httpx"
	"github.com/anujmishra420b6r9-pixel/thokMarket-2.o/internal/logger"

	"go.uber.org/zap"
)

// MasterCredentials is the out-of-band shared secret pair from configuration.
// The master principal is never persisted.
type MasterCredentials struct {
	Number   string
	Password string
}

// Session is the result of a successful login: the signed token plus the
// display fields the SPA echoes back.
type Session struct {
	Token    string
	ID       string
	Rank     auth.Rank
	Name     string
	Category string
}

type UserSignupInput struct {
	Name     string
	Address  string
	Password string
	Category string
	Number   string
}

type AdminSignupInput struct {
	Name     string
	Address  string
	Password string
	Category string
	Number   string
}

type Service interface {
	Login(ctx context.Context, number, password string) (*Session, error)
	UserSignup(ctx context.Context, in UserSignupInput) (string, *User, error)
	AdminSignup(ctx context.Context, in AdminSignupInput) (*Admin, error)
	Resolve(ctx context.Context, claims *auth.Claims) (*auth.Principal, error)
	UpdateProfile(ctx context.Context, principal *auth.Principal, id string, updates map[string]interface{}) (*auth.Principal, error)
}

type service struct {
	repo   Repository
	master MasterCredentials
}

func NewService(repo Repository, master MasterCredentials) Service {
	return &service{repo: repo, master: master}
}

// Login resolves a credential pair through the strict priority cascade:
// master, then admin, then user. First match wins, so a number shared by an
// admin and a user always lands on the admin. A rank match with a wrong
// password falls through to the next tier rather than failing early.
func (s *service) Login(ctx context.Context, number, password string) (*Session, error) {
	log := logger.FromCtx(ctx)

	if number == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	log.Info("login attempt", zap.String("number", number))

	if s.matchesMaster(number, password) {
		token, err := auth.GenerateToken("master", auth.RankMaster, "", "")
		if err != nil {
			return nil, httpx.Wrap(httpx.Internal, "Internal server error", err)
		}
		log.Info("master login successful")
		return &Session{Token: token, ID: "master", Rank: auth.RankMaster}, nil
	}

	if adminNumber, err := strconv.ParseInt(number, 10, 64); err == nil {
		admin, err := s.repo.FindAdminByNumber(ctx, adminNumber)
		if err != nil {
			return nil, httpx.Wrap(httpx.Internal, "Internal server error", err)
		}
		if admin == nil {
			// existence leak stays in logs only
			log.Debug("admin not found", zap.String("number", number))
		} else if auth.CheckPasswordHash(password, admin.Password) {
			token, err := auth.GenerateToken(admin.ID.Hex(), auth.RankAdmin, admin.Name, admin.Category)
			if err != nil {
				return nil, httpx.Wrap(httpx.Internal, "Internal server error", err)
			}
			return &Session{
				Token:    token,
				ID:       admin.ID.Hex(),
				Rank:     auth.RankAdmin,
				Name:     admin.Name,
				Category: admin.Category,
			}, nil
		}
	}

	user, err := s.repo.FindUserByNumber(ctx, number)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Internal server error", err)
	}
	if user != nil && auth.CheckPasswordHash(password, user.Password) {
		token, err := auth.GenerateToken(user.ID.Hex(), auth.RankUser, user.Name, "")
		if err != nil {
			return nil, httpx.Wrap(httpx.Internal, "Internal server error", err)
		}
		return &Session{Token: token, ID: user.ID.Hex(), Rank: auth.RankUser, Name: user.Name}, nil
	}

	return nil, ErrInvalidCredentials
}

// matchesMaster compares both halves in constant time so the response timing
// does not reveal how far a probe got.
func (s *service) matchesMaster(number, password string) bool {
	if s.master.Number == "" || s.master.Password == "" {
		return false
	}
	n := subtle.ConstantTimeCompare([]byte(number), []byte(s.master.Number))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(s.master.Password))
	return n&p == 1
}

// UserSignup creates the user and issues a session immediately (auto-login).
func (s *service) UserSignup(ctx context.Context, in UserSignupInput) (string, *User, error) {
	log := logger.FromCtx(ctx)

	if in.Name == "" || in.Address == "" || in.Password == "" || in.Category == "" || in.Number == "" {
		return "", nil, ErrMissingFields
	}

	existing, err := s.repo.FindUserByNumber(ctx, in.Number)
	if err != nil {
		return "", nil, httpx.Wrap(httpx.Internal, "Internal Server Error.", err)
	}
	if existing != nil {
		return "", nil, ErrUserExists
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, httpx.Wrap(httpx.Internal, "Internal Server Error.", err)
	}

	user, err := s.repo.CreateUser(ctx, &User{
		Name:     strings.TrimSpace(in.Name),
		Address:  in.Address,
		Password: hashed,
		Category: in.Category,
		Number:   in.Number,
		Rank:     auth.RankUser,
	})
	if err != nil {
		log.Error("failed to create user", zap.String("number", in.Number), zap.Error(err))
		return "", nil, httpx.Wrap(httpx.Internal, "Internal Server Error.", err)
	}

	token, err := auth.GenerateToken(user.ID.Hex(), auth.RankUser, user.Name, "")
	if err != nil {
		return "", nil, httpx.Wrap(httpx.Internal, "Internal Server Error.", err)
	}

	log.Info("user signup completed", zap.String("user_id", user.ID.Hex()))
	return token, user, nil
}

// AdminSignup does not auto-login. The asymmetry with UserSignup is inherited
// behavior the SPA relies on; do not "fix" it here.
func (s *service) AdminSignup(ctx context.Context, in AdminSignupInput) (*Admin, error) {
	log := logger.FromCtx(ctx)

	if in.Name == "" || in.Address == "" || in.Password == "" || in.Category == "" || in.Number == "" {
		return nil, ErrMissingFields
	}

	number, err := strconv.ParseInt(in.Number, 10, 64)
	if err != nil {
		return nil, httpx.E(httpx.Validation, "Mobile number must be numeric")
	}

	existing, err := s.repo.FindAdminByNumber(ctx, number)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Something went wrong", err)
	}
	if existing != nil {
		return nil, ErrAdminExists
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, httpx.Wrap(httpx.Internal, "Something went wrong", err)
	}

	admin, err := s.repo.CreateAdmin(ctx, &Admin{
		Name:     strings.TrimSpace(in.Name),
		Address:  in.Address,
		Password: hashed,
		Category: in.Category,
		Number:   number,
		Rank:     auth.RankAdmin,
	})
	if err != nil {
		log.Error("failed to create admin", zap.String("number", in.Number), zap.Error(err))
		return nil, httpx.Wrap(httpx.Internal, "Something went wrong", err)
	}

	log.Info("admin signup completed", zap.String("admin_id", admin.ID.Hex()))
	return admin, nil
}

// Resolve turns verified claims into the acting principal. Admin and user
// tokens reload the live record, so a token for a deleted account dies lazily
// on its next use. Master has no backing record and is accepted as-is.
func (s *service) Resolve(ctx context.Context, claims *auth.Claims) (*auth.Principal, error) {
	switch claims.Rank {
	case auth.RankMaster:
		return &auth.Principal{ID: "master", Name: "Master User", Rank: auth.RankMaster}, nil

	case auth.RankAdmin:
		admin, err := s.repo.FindAdminByID(ctx, claims.SubjectID())
		if err != nil {
			return nil, httpx.Wrap(httpx.Internal, "Authentication failed.", err)
		}
		if admin == nil {
			return nil, ErrAdminNotFound
		}
		return &auth.Principal{
			ID:        admin.ID.Hex(),
			Name:      admin.Name,
			Address:   admin.Address,
			Category:  admin.Category,
			Number:    strconv.FormatInt(admin.Number, 10),
			Rank:      admin.Rank,
			CreatedAt: admin.CreatedAt,
			UpdatedAt: admin.UpdatedAt,
		}, nil

	default:
		user, err := s.repo.FindUserByID(ctx, claims.SubjectID())
		if err != nil {
			return nil, httpx.Wrap(httpx.Internal, "Authentication failed.", err)
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		return &auth.Principal{
			ID:        user.ID.Hex(),
			Name:      user.Name,
			Address:   user.Address,
			Category:  user.Category,
			Number:    user.Number,
			Rank:      user.Rank,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		}, nil
	}
}

// profileFields are the only keys a profile update may touch.
var profileFields = map[string]bool{
	"name":     true,
	"address":  true,
	"category": true,
}

var adminProfileFields = map[string]string{
	"name":     "adminName",
	"address":  "adminAddress",
	"category": "category",
}

func (s *service) UpdateProfile(ctx context.Context, principal *auth.Principal, id string, updates map[string]interface{}) (*auth.Principal, error) {
	if principal.IsMaster() {
		return nil, httpx.E(httpx.Validation, "Invalid role")
	}
	if principal.ID != id {
		return nil, ErrForbiddenProfile
	}

	set := map[string]interface{}{}
	for k, v := range updates {
		if !profileFields[k] {
			continue
		}
		if principal.IsAdmin() {
			set[adminProfileFields[k]] = v
		} else {
			set[k] = v
		}
	}
	if len(set) == 0 {
		return nil, ErrNoProfileUpdate
	}

	if principal.IsAdmin() {
		admin, err := s.repo.UpdateAdmin(ctx, id, set)
		if err != nil {
			return nil, httpx.Wrap(httpx.Internal, "Internal server error", err)
		}
		if admin == nil {
			return nil, ErrAdminNotFound
		}
		return &auth.Principal{
			ID:        admin.ID.Hex(),
			Name:      admin.Name,
			Address:   admin.Address,
			Category:  admin.Category,
			Number:    strconv.FormatInt(admin.Number, 10),
			Rank:      admin.Rank,
			CreatedAt: admin.CreatedAt,
			UpdatedAt: admin.UpdatedAt,
		}, nil
	}

	user, err := s.repo.UpdateUser(ctx, id, set)
	if err != nil {
		return nil, httpx.Wrap(httpx.Internal, "Internal server error", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &auth.Principal{
		ID:        user.ID.Hex(),
		Name:      user.Name,
		Address:   user.Address,
		Category:  user.Category,
		Number:    user.Number,
		Rank:      user.Rank,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}
