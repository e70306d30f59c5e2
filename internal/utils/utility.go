package utils

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"healthassist/internal/constants"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateTokens issues a signed session token for the given username.
func GenerateTokens(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constants.Username: username,
		constants.Expiry:   time.Now().Add(constants.SessionTokenExpiry).Unix(),
	})

	jwtSecret := os.Getenv(constants.JwtSecret)

	tokenString, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", errors.New("error occured at token signed string")
	}

	return tokenString, nil
}

// ParseToken validates a session token and returns the username it carries.
func ParseToken(tokenString string) (string, error) {
	jwtSecret := []byte(os.Getenv(constants.JwtSecret))

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	username, ok := claims[constants.Username].(string)
	if !ok {
		return "", errors.New("username not found in token")
	}

	return username, nil
}

// Age returns full years between dob and today, one less when the
// birthday has not yet occurred this calendar year.
func Age(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}

// GenerateOTP draws a 4-digit code from [1000, 9999]. Demo grade, not
// cryptographic.
func GenerateOTP() string {
	return strconv.Itoa(1000 + rand.Intn(9000))
}
