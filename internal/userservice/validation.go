package userservice

import (
	"regexp"

	"github.com/sushihentaime/skywrite/internal/common"
)

var (
	EmailRX     = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	UppercaseRX = regexp.MustCompile("[A-Z]")
	LowercaseRX = regexp.MustCompile("[a-z]")
	NumberRX    = regexp.MustCompile("[0-9]")
)

func validateFullname(v *common.Validator, fullname string) {
	v.Check(len(fullname) >= 3, "fullname", "must be at least 3 letters long")
}

func validateEmail(v *common.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(v.Matches(email, EmailRX), "email", "must be a valid email address")
}

func validatePassword(v *common.Validator, password string) {
	value := v.CheckStringLength(password, 6, 20) && NumberRX.MatchString(password) && LowercaseRX.MatchString(password) && UppercaseRX.MatchString(password)
	v.Check(value, "password", "should be 6 to 20 characters long with 1 numeric, 1 lowercase and 1 uppercase letter")
}
