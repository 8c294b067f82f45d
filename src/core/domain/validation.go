package domain

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// ValidateUsername returns the message for an unacceptable username, or "".
func ValidateUsername(username string) string {
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return fmt.Sprintf("Usernames must be at least %d characters long", MinUsernameLength)
	}
	return ""
}

// ValidatePassword returns the message for an unacceptable password, or "".
func ValidatePassword(password string) string {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Sprintf("Passwords must be at least %d characters long", MinPasswordLength)
	}
	return ""
}

// ValidateCredentials checks both login fields and returns FieldErrors or nil.
func ValidateCredentials(username, password string) error {
	fe := FieldErrors{}
	fe.Add("username", ValidateUsername(username))
	fe.Add("password", ValidatePassword(password))
	return fe.OrNil()
}

// ValidateJoke checks a new joke's fields and returns FieldErrors or nil.
func ValidateJoke(name, content string) error {
	fe := FieldErrors{}
	if utf8.RuneCountInString(name) < MinJokeNameLength {
		fe.Add("name", "That joke's name is too short")
	}
	if utf8.RuneCountInString(content) < MinJokeContentLength {
		fe.Add("content", "That joke is too short")
	}
	return fe.OrNil()
}

// SafeRedirect returns target when it is a local absolute path, otherwise DefaultRedirect.
// Protocol-relative ("//host") and backslash forms are rejected, and so is any control
// byte: browsers drop tab, CR and LF while parsing, which turns "/\t/host" into "//host".
func SafeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") {
		return DefaultRedirect
	}
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return DefaultRedirect
	}
	for i := 0; i < len(target); i++ {
		if b := target[i]; b < 0x20 || b == 0x7f {
			return DefaultRedirect
		}
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return DefaultRedirect
	}
	return target
}
