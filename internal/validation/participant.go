package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ds124wfegd/club-events/internal/entity"
)

const (
	InvalidParticipantMessage = "Invalid data"
	InvalidMemberMessage      = "Invalid team member data"
	InvalidTeamNameMessage    = "Team name is required"
	InvalidTeamCountMessage   = "Invalid number of team members"

	TeamMembersCountKey = "__team_members_count"
)

var participantMessages = map[string]string{
	"name.min":    "Name is required",
	"email.email": "Valid email required",
	"phone.min":   "Phone must be at least 10 digits",
	"phone.phone": "Invalid phone number",
}

var memberMessages = map[string]string{
	"name.min":    "Member name is required",
	"email.email": "Valid email required",
	"phone.min":   "Phone must be at least 10 digits",
	"phone.phone": "Invalid phone number",
}

// ParseParticipant validates an individual registration form.
func (v *Validator) ParseParticipant(form Form) (*entity.TeamMember, error) {
	p := &entity.TeamMember{
		Name:  form.Get("name"),
		Email: form.Get("email"),
		Phone: form.Get("phone"),
		RegNo: strings.TrimSpace(form.Get("regNo")),
	}
	if fields := v.check(p, participantMessages, ""); len(fields) > 0 {
		return nil, entity.NewValidationError(InvalidParticipantMessage, fields...)
	}
	return p, nil
}

// ParseTeamMember validates member block i of a team form, read from the
// memberName_i, memberEmail_i, memberPhone_i and memberRegNo_i keys.
func (v *Validator) ParseTeamMember(form Form, i int) (*entity.TeamMember, error) {
	m := &entity.TeamMember{
		Name:  form.Get(fmt.Sprintf("memberName_%d", i)),
		Email: form.Get(fmt.Sprintf("memberEmail_%d", i)),
		Phone: form.Get(fmt.Sprintf("memberPhone_%d", i)),
		RegNo: strings.TrimSpace(form.Get(fmt.Sprintf("memberRegNo_%d", i))),
	}
	prefix := fmt.Sprintf("teamMembers[%d].", i)
	if fields := v.check(m, memberMessages, prefix); len(fields) > 0 {
		return nil, entity.NewValidationError(InvalidMemberMessage, fields...)
	}
	return m, nil
}

// ValidateTeamName returns the trimmed team name when it has at least two
// characters.
func ValidateTeamName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if utf8.RuneCountInString(name) < 2 {
		return "", entity.NewValidationError(InvalidTeamNameMessage,
			entity.FieldError{Field: "teamName", Message: InvalidTeamNameMessage})
	}
	return name, nil
}

// ParseTeamCount reads how many member blocks were filled in and checks it
// against the event bounds.
func ParseTeamCount(form Form, minSize, maxSize int) (int, error) {
	invalid := entity.NewValidationError(InvalidTeamCountMessage,
		entity.FieldError{Field: TeamMembersCountKey, Message: InvalidTeamCountMessage})

	raw, ok := form.Lookup(TeamMembersCountKey)
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, invalid
	}
	n, numErr := parseInteger(raw)
	if numErr != 0 || n < minSize || n > maxSize {
		return 0, invalid
	}
	return n, nil
}
