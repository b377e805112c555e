package services

import (
	"fmt"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/goccy/go-json"

	"frontdesk/errors"
)

// OperatorClaims là thông tin nhân viên trong token
type OperatorClaims struct {
	OperatorID uint
	Role       int
}

// GetOperatorFromToken lấy operatorID và role từ token.
// With an empty secret the signature is not checked; the directory that
// issued the token remains the authority.
func GetOperatorFromToken(tokenString, secret string) (OperatorClaims, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return OperatorClaims{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	claimsMap := jwt.MapClaims{}
	if secret != "" {
		token, err := jwt.ParseWithClaims(tokenString, claimsMap, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return OperatorClaims{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ hoặc đã hết hạn", err)
		}
	} else {
		// Giải mã phần payload của token
		payload, err := jwt.DecodeSegment(parts[1])
		if err != nil {
			return OperatorClaims{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể giải mã token", err)
		}
		if err := json.Unmarshal(payload, &claimsMap); err != nil {
			return OperatorClaims{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể parse token", err)
		}
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return OperatorClaims{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return OperatorClaims{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy ID user trong token", nil)
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return OperatorClaims{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy role trong token", nil)
	}

	return OperatorClaims{OperatorID: uint(userID), Role: int(role)}, nil
}
