package entity

import "time"

// TeamMember is one person on a team entry. The same shape is used for
// individual entries.
type TeamMember struct {
	Name  string `json:"name" validate:"min=2"`
	Email string `json:"email" validate:"email"`
	Phone string `json:"phone" validate:"min=10,phone"`
	RegNo string `json:"regNo,omitempty"`
}

// Participant is one registration entry stored under an event: either an
// individual (Name/Email/Phone/RegNo set) or a team (TeamName/TeamMembers set).
type Participant struct {
	ID                 string       `json:"id" db:"id"`
	EventID            string       `json:"eventId" db:"event_id"`
	IsTeamRegistration bool         `json:"isTeamRegistration" db:"is_team_registration"`
	TeamSize           int          `json:"teamSize" db:"team_size"`
	Name               string       `json:"name,omitempty" db:"name"`
	Email              string       `json:"email,omitempty" db:"email"`
	Phone              string       `json:"phone,omitempty" db:"phone"`
	RegNo              string       `json:"regNo,omitempty" db:"reg_no"`
	TeamName           string       `json:"teamName,omitempty" db:"team_name"`
	TeamMembers        []TeamMember `json:"teamMembers,omitempty" db:"team_members"`
	SubmittedAt        time.Time    `json:"submittedAt" db:"submitted_at"`
}

func NewIndividualParticipant(eventID string, m TeamMember, submittedAt time.Time) *Participant {
	return &Participant{
		EventID:            eventID,
		IsTeamRegistration: false,
		TeamSize:           1,
		Name:               m.Name,
		Email:              m.Email,
		Phone:              m.Phone,
		RegNo:              m.RegNo,
		SubmittedAt:        submittedAt,
	}
}

func NewTeamParticipant(eventID, teamName string, members []TeamMember, submittedAt time.Time) *Participant {
	return &Participant{
		EventID:            eventID,
		IsTeamRegistration: true,
		TeamSize:           len(members),
		TeamName:           teamName,
		TeamMembers:        members,
		SubmittedAt:        submittedAt,
	}
}

// ParticipantRow is the admin export projection: one row per person.
type ParticipantRow struct {
	TeamName           string `json:"teamName"`
	MemberName         string `json:"memberName"`
	MemberEmail        string `json:"memberEmail"`
	MemberPhone        string `json:"memberPhone"`
	MemberRegNo        string `json:"memberRegNo,omitempty"`
	IsTeamRegistration bool   `json:"isTeamRegistration"`
	EntryID            string `json:"entryId"`
}

// Rows flattens the entry: a team yields one row per member sharing the team
// name, an individual yields a single row with an empty team name.
func (p *Participant) Rows() []ParticipantRow {
	if !p.IsTeamRegistration {
		return []ParticipantRow{{
			MemberName:  p.Name,
			MemberEmail: p.Email,
			MemberPhone: p.Phone,
			MemberRegNo: p.RegNo,
			EntryID:     p.ID,
		}}
	}

	rows := make([]ParticipantRow, 0, len(p.TeamMembers))
	for _, m := range p.TeamMembers {
		rows = append(rows, ParticipantRow{
			TeamName:           p.TeamName,
			MemberName:         m.Name,
			MemberEmail:        m.Email,
			MemberPhone:        m.Phone,
			MemberRegNo:        m.RegNo,
			IsTeamRegistration: true,
			EntryID:            p.ID,
		})
	}
	return rows
}
