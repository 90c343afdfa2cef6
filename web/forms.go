package web

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"blog/models"

	"gorm.io/gorm"
)

// PostForm carries the two user-editable post fields. Group is the submitted
// group id as a string so a failed submission re-renders exactly what was
// posted.
type PostForm struct {
	Text  string `form:"text"`
	Group string `form:"group"`
}

// Validate checks the form and resolves the optional group reference.
// A non-empty error map means nothing may be persisted.
func (f *PostForm) Validate() (groupID *uint64, formErrors map[string]string) {
	formErrors = map[string]string{}
	if strings.TrimSpace(f.Text) == "" {
		formErrors["text"] = "This field is required."
	}
	if f.Group != "" {
		id, err := strconv.ParseUint(f.Group, 10, 64)
		if err == nil {
			_, err = models.GroupByID(id)
		}
		if err != nil {
			formErrors["group"] = "Select a valid group."
		} else {
			groupID = &id
		}
	}
	return
}

type SignupForm struct {
	Username  string `form:"username"`
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Email     string `form:"email"`
	Password1 string `form:"password1"`
	Password2 string `form:"password2"`
}

// Usernames double as profile URL segments, so the charset is restricted.
var validUsername = regexp.MustCompile(`^[A-Za-z0-9@.+_-]+$`)

func (f *SignupForm) Validate() (formErrors map[string]string) {
	formErrors = map[string]string{}
	if strings.TrimSpace(f.Username) == "" {
		formErrors["username"] = "This field is required."
	} else if !validUsername.MatchString(f.Username) {
		formErrors["username"] = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	} else if _, err := models.UserByUsername(f.Username); err == nil {
		formErrors["username"] = "A user with that username already exists."
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		formErrors["username"] = "Could not verify the username, try again."
	}
	if f.Password1 == "" {
		formErrors["password1"] = "This field is required."
	} else if len(f.Password1) < 8 {
		formErrors["password1"] = "Password must be at least 8 characters."
	}
	if f.Password2 != f.Password1 {
		formErrors["password2"] = "The two password fields didn't match."
	}
	return
}

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}
