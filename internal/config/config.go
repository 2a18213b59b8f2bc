// Package config provides YAML-based tuning for the campaign levels and
// difficulty presets applied on top of the loaded values.
package config

// MazeConfig tunes the maze trial.
type MazeConfig struct {
	Cols        int     `yaml:"cols"`
	Rows        int     `yaml:"rows"`
	CoinChance  float64 `yaml:"coin_chance"`
	PlayerSpeed float64 `yaml:"player_speed"` // maze cells per second
}

// InvadersConfig tunes the invaders trial. Speeds are screen cells per
// second; intervals are seconds.
type InvadersConfig struct {
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	Lives        int     `yaml:"lives"`
	PlayerSpeed  float64 `yaml:"player_speed"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	FireCooldown float64 `yaml:"fire_cooldown"`
	FireRate     float64 `yaml:"fire_rate"` // per-invader shots per second
	MoveInterval float64 `yaml:"move_interval"`
	StepSize     float64 `yaml:"step_size"`
	Descent      float64 `yaml:"descent"`
	ScorePerKill int     `yaml:"score_per_kill"`
}

// FlappyConfig tunes the flappy trial.
type FlappyConfig struct {
	PipeWidth    float64 `yaml:"pipe_width"`
	GapHeight    float64 `yaml:"gap_height"`
	PipeSpeed    float64 `yaml:"pipe_speed"`
	PipeSpacing  float64 `yaml:"pipe_spacing"`
	JumpVelocity float64 `yaml:"jump_velocity"` // negative = up
	Gravity      float64 `yaml:"gravity"`
	WinScore     int     `yaml:"win_score"`
	MaxHealth    int     `yaml:"max_health"`
	Damage       int     `yaml:"damage"`
}

// CourseConfig tunes the obstacle course trial.
type CourseConfig struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	JumpForce   float64 `yaml:"jump_force"`
	Gravity     float64 `yaml:"gravity"`
}

// Bundle holds the tuning for every level of the campaign.
type Bundle struct {
	Maze     MazeConfig     `yaml:"maze"`
	Invaders InvadersConfig `yaml:"invaders"`
	Flappy   FlappyConfig   `yaml:"flappy"`
	Course   CourseConfig   `yaml:"course"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the name maps to a known preset.
func ValidPreset(name string) bool {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ApplyPreset scales the bundle for a difficulty preset. Normal leaves the
// loaded values untouched.
func ApplyPreset(b *Bundle, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		b.Invaders.Lives += 2
		b.Invaders.FireRate *= 0.6
		b.Invaders.MoveInterval *= 1.25
		b.Flappy.MaxHealth += 50
		b.Flappy.WinScore -= 3
		b.Maze.CoinChance *= 0.7
	case DifficultyHard:
		if b.Invaders.Lives > 1 {
			b.Invaders.Lives -= 2
		}
		b.Invaders.FireRate *= 1.5
		b.Invaders.MoveInterval *= 0.8
		b.Flappy.MaxHealth -= 50
		b.Flappy.WinScore += 5
		b.Flappy.GapHeight -= 1
	}
	if b.Invaders.Lives < 1 {
		b.Invaders.Lives = 1
	}
	if b.Flappy.MaxHealth < b.Flappy.Damage {
		b.Flappy.MaxHealth = b.Flappy.Damage
	}
	if b.Flappy.WinScore < 1 {
		b.Flappy.WinScore = 1
	}
}
