package domain

// Snapshot is a frozen 10-player match state at a given in-game minute.
// Snapshots are loaded once at startup and never mutated; participant_id 1 is
// always the subject player.
type Snapshot struct {
	MatchID      string           `json:"match_id"`
	Minute       int              `json:"minute"`
	BlueTeamGold int              `json:"blue_team_gold"`
	RedTeamGold  int              `json:"red_team_gold"`
	GoldDiff     int              `json:"gold_diff"` // blue perspective
	Players      []SnapshotPlayer `json:"players"`
}

type SnapshotPlayer struct {
	ParticipantID int            `json:"participant_id"` // 1..10
	Champion      string         `json:"champion"`
	Team          string         `json:"team"` // Blue or Red
	Level         int            `json:"level"`
	TotalGold     int            `json:"total_gold"`
	CS            int            `json:"cs"`
	Items         []string       `json:"items"`
	Skills        map[string]int `json:"skills"` // slot -> rank
}

const SubjectParticipantID = 1

// RolePositions maps participant ids to lane positions; ids 6-10 mirror 1-5
// on the other team.
var RolePositions = map[int]string{
	1: "Top", 2: "Jungle", 3: "Mid", 4: "ADC", 5: "Support",
	6: "Top", 7: "Jungle", 8: "Mid", 9: "ADC", 10: "Support",
}

// Position returns the lane position for a participant id, defaulting to Top.
func Position(participantID int) string {
	if pos, ok := RolePositions[participantID]; ok {
		return pos
	}
	return "Top"
}

// UserPlayer returns the subject player, or nil if participant 1 is absent.
func (s *Snapshot) UserPlayer() *SnapshotPlayer {
	for i := range s.Players {
		if s.Players[i].ParticipantID == SubjectParticipantID {
			return &s.Players[i]
		}
	}
	return nil
}

// Allies returns the subject's teammates, excluding the subject.
func (s *Snapshot) Allies() []SnapshotPlayer {
	user := s.UserPlayer()
	if user == nil {
		return nil
	}
	var allies []SnapshotPlayer
	for _, p := range s.Players {
		if p.Team == user.Team && p.ParticipantID != SubjectParticipantID {
			allies = append(allies, p)
		}
	}
	return allies
}

// Enemies returns the players on the opposite team from the subject.
func (s *Snapshot) Enemies() []SnapshotPlayer {
	user := s.UserPlayer()
	if user == nil {
		return nil
	}
	var enemies []SnapshotPlayer
	for _, p := range s.Players {
		if p.Team != user.Team {
			enemies = append(enemies, p)
		}
	}
	return enemies
}
