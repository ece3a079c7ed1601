package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-mrf/internal/shared/apperror"
	"go-mrf/internal/shared/contextutil"
	"go-mrf/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	KeyUserID     = "user_id"
	KeyEmployeeID = "employee_id"
	KeyCompanyID  = "company_id"
	KeyEmpPos     = "emp_pos"
)

var (
	ErrTokenMissing = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken = apperror.New("INVALID_TOKEN", "Invalid or malformed token", http.StatusUnauthorized)
	ErrTokenExpired = apperror.New("TOKEN_EXPIRED", "Token has expired", http.StatusUnauthorized)
)

// AuthMiddleware verifies an HS256 bearer token (or the access_token cookie)
// and copies its identity claims into the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			abortWith(c, ErrTokenMissing)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, ErrTokenExpired)
				return
			}
			abortWith(c, ErrInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, ErrInvalidToken)
			return
		}

		userID, _ := claims["user_id"].(string)
		companyID, _ := claims["company_id"].(string)
		employeeID, _ := claims["employee_id"].(string)
		if userID == "" || companyID == "" || employeeID == "" {
			abortWith(c, ErrInvalidToken)
			return
		}
		empPos, _ := claims["emp_pos"].(string)

		c.Set(KeyUserID, userID)
		c.Set(KeyEmployeeID, employeeID)
		c.Set(KeyCompanyID, companyID)
		c.Set(KeyEmpPos, empPos)

		ctx := contextutil.WithEmployeeID(c.Request.Context(), employeeID)
		reqLogger := contextutil.GetLogger(ctx, zap.L()).With(zap.String("employee_id", employeeID))
		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))

		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, apperror.ToHTTP(err))
}
