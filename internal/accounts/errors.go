package accounts

import (
	"fmt"
	"math"
	"time"

	"github.com/pratikshau1/vaultnotes/internal/common"
)

// CredentialsError reports a wrong login secret together with how many
// attempts remain before the account locks. It matches
// common.ErrInvalidCredentials under errors.Is.
type CredentialsError struct {
	AttemptsRemaining int
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("invalid credentials, %d attempts remaining", e.AttemptsRemaining)
}

func (e *CredentialsError) Is(target error) bool {
	return target == common.ErrInvalidCredentials
}

// LockedError reports a locked account and when the lock expires. It matches
// common.ErrAccountLocked under errors.Is.
type LockedError struct {
	Until time.Time
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("account locked, try again in %d minutes", e.Minutes())
}

func (e *LockedError) Is(target error) bool {
	return target == common.ErrAccountLocked
}

// Minutes returns the whole minutes remaining until the lock expires,
// rounded up so "1 minute left" never reads as zero.
func (e *LockedError) Minutes() int {
	left := time.Until(e.Until)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Minutes()))
}
