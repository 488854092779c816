package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gizemyilmaz/lol-knowledge-engine/internal/service"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Malphite", "malphite"},
		{"Miss Fortune", "miss_fortune"},
		{"Cho'Gath", "chogath"},
		{"Dr. Mundo", "dr_mundo"},
		{"  Yasuo  ", "yasuo"},
		{"Kai'Sa", "kaisa"},
		{"Nunu-Willump", "nunu_willump"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, service.NormalizeName(tt.input), "input %q", tt.input)
	}
}

func TestNormalizeChampionName_Aliases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"mundo", "dr_mundo"},
		{"Doctor Mundo", "dr_mundo"},
		{"j4", "jarvan_iv"},
		{"TF", "twisted_fate"},
		{"mf", "miss_fortune"},
		{"cho'gath", "chogath"},
		{"kog'maw", "kogmaw"},
		{"Monkey King", "wukong"},
		{"yi", "master_yi"},
		// No alias: falls through to the generic rules
		{"Lux", "lux"},
		{"Aurelion Sol", "aurelion_sol"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, service.NormalizeChampionName(tt.input), "input %q", tt.input)
	}
}

func TestNormalizeStatName(t *testing.T) {
	assert.Equal(t, "health", service.NormalizeStatName("HP"))
	assert.Equal(t, "attack_damage", service.NormalizeStatName("ad"))
	assert.Equal(t, "attack_damage", service.NormalizeStatName("attack damage"))
	assert.Equal(t, "magic_resist", service.NormalizeStatName("MR"))
	assert.Equal(t, "attack_range", service.NormalizeStatName("range"))
	assert.Equal(t, "lethality", service.NormalizeStatName("Lethality"))
}

func TestNormalizeRoleAndLane(t *testing.T) {
	assert.Equal(t, "TankRole", service.NormalizeRole("tank"))
	assert.Equal(t, "CarryRole", service.NormalizeRole("ADC"))
	assert.Equal(t, "WarriorRole", service.NormalizeRole("bruiser"))
	assert.Equal(t, "TankRole", service.NormalizeRole("TankRole"))

	assert.Equal(t, "TopLane", service.NormalizeLane("top"))
	assert.Equal(t, "MidLane", service.NormalizeLane("middle"))
	assert.Equal(t, "BottomLane", service.NormalizeLane("bot"))
	assert.Equal(t, "Jungle", service.NormalizeLane("jg"))
}

func TestSynergyRating(t *testing.T) {
	assert.Equal(t, "Strong", service.SynergyRating(3, 3))
	assert.Equal(t, "Strong", service.SynergyRating(5, 9))
	assert.Equal(t, "Moderate", service.SynergyRating(1, 3))
	assert.Equal(t, "Weak", service.SynergyRating(0, 3))
	assert.Equal(t, "Weak", service.SynergyRating(2, 9))
}
