package auth

import (
	"context"
	"log"
	"time"

	"techsell-web/domain"
	"techsell-web/entities"
	"techsell-web/internal/navstate"
	"techsell-web/pkg/gateway"
	"techsell-web/pkg/jwt"
)

type (
	AuthService interface {
		Signup(ctx context.Context, req domain.SignupRequest) (*PendingSignup, error)
		VerifyOtp(ctx context.Context, signupID, enteredOtp string) (*entities.User, string, error)
		ResendOtp(ctx context.Context, signupID string) error
		Login(ctx context.Context, req domain.LoginRequest) (*entities.User, string, error)
		Logout(ctx context.Context, userID string) error
		CheckAuth(ctx context.Context, userID string) (*entities.User, error)
		BecomeSeller(ctx context.Context, userID string, req domain.BecomeSellerRequest) (string, error)
		BecomeDelivery(ctx context.Context, userID string, req domain.BecomeDeliveryRequest) (string, error)
		Session(userID string) (*Session, bool)
		SessionState(userID, signupID string) SessionState
	}

	authService struct {
		store      SessionStore
		client     *gateway.Client
		jwtService jwt.JWTService
	}

	verifyOtpPayload struct {
		Username     string `json:"username"`
		StudentEmail string `json:"studentEmail"`
		Residence    string `json:"residence"`
		Password     string `json:"password"`
		EnteredOtp   string `json:"enteredOtp"`
	}

	resendOtpPayload struct {
		Email string `json:"email"`
	}

	loginResponse struct {
		Message string        `json:"message"`
		User    entities.User `json:"user"`
	}

	messageResponse struct {
		Message string `json:"message"`
	}
)

func NewAuthService(store SessionStore, client *gateway.Client, jwtService jwt.JWTService) AuthService {
	return &authService{
		store:      store,
		client:     client,
		jwtService: jwtService,
	}
}

// Signup submits the form to the backend and records the pending signup so
// the OTP step can replay it. The session stays unauthenticated until the
// code is verified.
func (s *authService) Signup(ctx context.Context, req domain.SignupRequest) (*PendingSignup, error) {
	if err := s.client.Post(ctx, "/auth/signup", nil, req, nil); err != nil {
		log.Printf("signup failed: %v", err)
		return nil, err
	}
	return s.store.CreatePending(req), nil
}

func (s *authService) VerifyOtp(ctx context.Context, signupID, enteredOtp string) (*entities.User, string, error) {
	pending, ok := s.store.GetPending(signupID)
	if !ok {
		return nil, "", domain.ErrNoPendingSignup
	}

	creds := gateway.NewCredentials()
	payload := verifyOtpPayload{
		Username:     pending.Username,
		StudentEmail: pending.StudentEmail,
		Residence:    pending.Residence,
		Password:     pending.Password,
		EnteredOtp:   enteredOtp,
	}

	var user entities.User
	if err := s.client.Post(ctx, "/auth/verify-otp", creds, payload, &user); err != nil {
		log.Printf("otp verification failed: %v", err)
		return nil, "", err
	}

	s.store.Put(&Session{
		User:        user,
		Credentials: creds,
		Nav:         navstate.New(),
		CreatedAt:   time.Now(),
	})
	s.store.DeletePending(signupID)

	token := s.jwtService.GenerateTokenUser(user.ID, user.Roles)
	return &user, token, nil
}

func (s *authService) ResendOtp(ctx context.Context, signupID string) error {
	pending, ok := s.store.GetPending(signupID)
	if !ok {
		return domain.ErrNoPendingSignup
	}
	return s.client.Post(ctx, "/auth/resend-otp", nil, resendOtpPayload{Email: pending.StudentEmail}, nil)
}

func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (*entities.User, string, error) {
	creds := gateway.NewCredentials()

	var res loginResponse
	if err := s.client.Post(ctx, "/auth/login", creds, req, &res); err != nil {
		log.Printf("login failed: %v", err)
		return nil, "", err
	}

	s.store.Put(&Session{
		User:        res.User,
		Credentials: creds,
		Nav:         navstate.New(),
		CreatedAt:   time.Now(),
	})

	token := s.jwtService.GenerateTokenUser(res.User.ID, res.User.Roles)
	return &res.User, token, nil
}

// Logout tears the session down only after the backend confirms; a failed
// call leaves the session intact and surfaces the message.
func (s *authService) Logout(ctx context.Context, userID string) error {
	session, ok := s.store.Get(userID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	if err := s.client.Post(ctx, "/auth/logout", session.Credentials, nil, nil); err != nil {
		log.Printf("logout failed: %v", err)
		return err
	}
	s.store.Delete(userID)
	return nil
}

// CheckAuth refreshes the identity from the backend. Any failure means "no
// session", never an error state.
func (s *authService) CheckAuth(ctx context.Context, userID string) (*entities.User, error) {
	session, ok := s.store.Get(userID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	var user entities.User
	if err := s.client.Get(ctx, "/auth/user/me", session.Credentials, &user); err != nil {
		log.Printf("Error in checkAuth %v", err)
		return nil, err
	}

	session.User = user
	return &user, nil
}

func (s *authService) BecomeSeller(ctx context.Context, userID string, req domain.BecomeSellerRequest) (string, error) {
	session, ok := s.store.Get(userID)
	if !ok {
		return "", domain.ErrSessionNotFound
	}

	var res messageResponse
	if err := s.client.Post(ctx, "/auth/become-seller", session.Credentials, req, &res); err != nil {
		return "", err
	}
	if res.Message == "" {
		res.Message = domain.MessageSuccessBecomeSeller
	}
	return res.Message, nil
}

func (s *authService) BecomeDelivery(ctx context.Context, userID string, req domain.BecomeDeliveryRequest) (string, error) {
	session, ok := s.store.Get(userID)
	if !ok {
		return "", domain.ErrSessionNotFound
	}

	var res messageResponse
	if err := s.client.Post(ctx, "/auth/become-delivery", session.Credentials, req, &res); err != nil {
		return "", err
	}
	if res.Message == "" {
		res.Message = domain.MessageSuccessBecomeDelivery
	}
	return res.Message, nil
}

func (s *authService) Session(userID string) (*Session, bool) {
	return s.store.Get(userID)
}

func (s *authService) SessionState(userID, signupID string) SessionState {
	return s.store.StateOf(userID, signupID)
}
