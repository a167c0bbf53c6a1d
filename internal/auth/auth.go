package auth

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"Wirefill/internal/httputil"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const loginKey contextKey = "login"

const (
	cookieName = "session_token"
	sessionTTL = 7 * 24 * time.Hour
)

// Authenv holds the single admin account that may read submitted notes.
type Authenv struct {
	JWTkey       []byte
	Login        string
	PasswordHash string
	CookieSecure bool
	now          func() time.Time
}

type Loginrequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func NewAuthenv(key []byte, login, passwordHash string, cookieSecure bool) *Authenv {
	return &Authenv{
		JWTkey:       key,
		Login:        login,
		PasswordHash: passwordHash,
		CookieSecure: cookieSecure,
		now:          time.Now,
	}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// LoginFromContext returns the admin login set by AuthMiddleware.
func LoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(loginKey).(string)
	return login, ok && login != ""
}

func (env *Authenv) parse(tokenString string) (string, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return env.JWTkey, nil
	}, jwt.WithTimeFunc(env.now))
	if err != nil || !token.Valid {
		if err != nil {
			slog.Debug("Rejected session token", "error", err)
		}
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	login, ok := claims["login"].(string)
	if !ok || login != env.Login {
		return "", false
	}
	return login, true
}

func (env *Authenv) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(cookieName)
		if err != nil {
			httputil.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		login, ok := env.parse(cookie.Value)
		if !ok {
			httputil.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), loginKey, login)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (env *Authenv) addCookie(w http.ResponseWriter) error {
	now := env.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"login": env.Login,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	})
	tokenString, err := token.SignedString(env.JWTkey)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    tokenString,
		Expires:  now.Add(sessionTTL),
		Path:     "/",
		HttpOnly: true,
		Secure:   env.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (env *Authenv) AuthHandler(w http.ResponseWriter, r *http.Request) {
	var req Loginrequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Login = strings.TrimSpace(req.Login)
	if req.Login == "" || req.Password == "" {
		httputil.Error(w, "Login and password required", http.StatusBadRequest)
		return
	}

	loginOK := subtle.ConstantTimeCompare([]byte(req.Login), []byte(env.Login)) == 1
	// The password is checked even on a login mismatch.
	pwErr := bcrypt.CompareHashAndPassword([]byte(env.PasswordHash), []byte(req.Password))
	if !loginOK || pwErr != nil {
		slog.Warn("Admin login failed", "remote", ClientIP(r))
		httputil.Error(w, "Invalid login or password", http.StatusUnauthorized)
		return
	}

	if err := env.addCookie(w); err != nil {
		slog.Error("Session token signing failed", "error", err)
		httputil.Error(w, "Session error", http.StatusInternalServerError)
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]string{"status": "authenticated"})
}

func (env *Authenv) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   env.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
