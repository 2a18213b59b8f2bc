package config

import _ "embed"

//go:embed defaults/campaign.yaml
var defaultCampaignYAML []byte

// DefaultBundle returns the hardcoded campaign tuning, used when even the
// embedded YAML cannot be parsed.
func DefaultBundle() Bundle {
	return Bundle{
		Maze: MazeConfig{
			Cols:        35,
			Rows:        21,
			CoinChance:  0.3,
			PlayerSpeed: 8,
		},
		Invaders: InvadersConfig{
			Rows:         2,
			Cols:         8,
			Lives:        5,
			PlayerSpeed:  30,
			BulletSpeed:  10,
			FireCooldown: 0.5,
			FireRate:     0.15,
			MoveInterval: 0.8,
			StepSize:     1,
			Descent:      1,
			ScorePerKill: 100,
		},
		Flappy: FlappyConfig{
			PipeWidth:    8,
			GapHeight:    8,
			PipeSpeed:    10,
			PipeSpacing:  25,
			JumpVelocity: -13,
			Gravity:      37,
			WinScore:     10,
			MaxHealth:    100,
			Damage:       25,
		},
		Course: CourseConfig{
			PlayerSpeed: 20,
			JumpForce:   21,
			Gravity:     43,
		},
	}
}
