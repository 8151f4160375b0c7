package token

import (
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/emstack/go-employee-console/identity"
	"github.com/emstack/go-employee-console/internal/utils"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrMissingSubject = errors.New("token missing user_id claim")
)

// Decode extracts the Identity embedded in an access token's payload
// segment. No signature verification is performed: the backend is the
// trust boundary and these claims only gate what the UI shows, never
// what the API permits.
//
// Any failure (wrong segment count, bad base64, bad JSON, missing
// user_id) is reported as an error and the caller treats it as "no
// session" - an Identity is never partially populated.
func Decode(raw string) (*identity.Identity, error) {
	unverified, _, err := jwtlib.NewParser().ParseUnverified(raw, jwtlib.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(ErrMalformedToken, err.Error())
	}

	claims, ok := unverified.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.Wrap(ErrMalformedToken, "claims are not a JSON object")
	}

	userID, ok := utils.Int64FromClaim(claims["user_id"])
	if !ok {
		return nil, ErrMissingSubject
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	id := &identity.Identity{
		ID:    userID,
		Email: email,
		Role:  identity.ParseRole(role),
	}

	if employeeID, ok := utils.Int64FromClaim(claims["employee_id"]); ok {
		id.EmployeeID = utils.Ptr(employeeID)
	}

	return id, nil
}
