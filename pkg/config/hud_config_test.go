package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultHUDConfig(t *testing.T) {
	cfg := DefaultHUDConfig()

	if cfg.Button.ClickCooldown != 0.15 {
		t.Errorf("ClickCooldown: got %v, want 0.15", cfg.Button.ClickCooldown)
	}
	if cfg.HintLabel.X != 10 || cfg.HintLabel.Y != 6 {
		t.Errorf("HintLabel position: got (%v, %v), want (10, 6)", cfg.HintLabel.X, cfg.HintLabel.Y)
	}
	if cfg.HintLabel.Color != "004290" {
		t.Errorf("HintLabel color: got %q, want 004290", cfg.HintLabel.Color)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("默认配置应通过校验: %v", err)
	}
	if _, ok := cfg.Bar("health"); !ok {
		t.Error("默认配置应包含 health 条")
	}
	if _, ok := cfg.Bar("ammo"); !ok {
		t.Error("默认配置应包含 ammo 条")
	}
}

func TestParseHUDConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *HUDConfig)
	}{
		{
			name: "部分覆盖保留默认值",
			yamlContent: `
button:
  clickCooldown: 0.3
hintLabel:
  color: "ff0000"
`,
			validate: func(t *testing.T, cfg *HUDConfig) {
				if cfg.Button.ClickCooldown != 0.3 {
					t.Errorf("ClickCooldown: got %v, want 0.3", cfg.Button.ClickCooldown)
				}
				if cfg.Button.DisabledTint != DefaultDisabledTint {
					t.Errorf("DisabledTint should keep default, got %v", cfg.Button.DisabledTint)
				}
				if cfg.HintLabel.Color != "ff0000" {
					t.Errorf("HintLabel color: got %q", cfg.HintLabel.Color)
				}
				if cfg.HintLabel.X != DefaultHintLabelX {
					t.Errorf("HintLabel X should keep default, got %v", cfg.HintLabel.X)
				}
				if cfg.Window.Width != DefaultWindowWidth {
					t.Errorf("Window width should keep default, got %d", cfg.Window.Width)
				}
			},
		},
		{
			name: "完整配置",
			yamlContent: `
window:
  width: 800
  height: 600
  title: "Bars"
font:
  path: assets/fonts/test.ttf
  size: 20
sound:
  buttonClick: assets/sounds/click.ogg
`,
			validate: func(t *testing.T, cfg *HUDConfig) {
				if cfg.Window.Width != 800 || cfg.Window.Height != 600 || cfg.Window.Title != "Bars" {
					t.Errorf("Window: got %+v", cfg.Window)
				}
				if cfg.Font.Path != "assets/fonts/test.ttf" || cfg.Font.Size != 20 {
					t.Errorf("Font: got %+v", cfg.Font)
				}
				if cfg.Sound.ButtonClick != "assets/sounds/click.ogg" {
					t.Errorf("Sound: got %+v", cfg.Sound)
				}
			},
		},
		{
			name: "负冷却时间",
			yamlContent: `
button:
  clickCooldown: -1
`,
			wantErr:     true,
			errContains: "clickCooldown",
		},
		{
			name: "变灰比例越界",
			yamlContent: `
button:
  disabledTint: 2
`,
			wantErr:     true,
			errContains: "disabledTint",
		},
		{
			name: "窗口尺寸为零",
			yamlContent: `
window:
  width: 0
`,
			wantErr:     true,
			errContains: "window size",
		},
		{
			name: "条形指示器列表整体替换",
			yamlContent: `
bars:
  - id: mana
    text: "MP "
    textColor: "3c78ff"
    animId: mana
    animIdEmpty: mana-empty
    max: 5
    initial: 2
`,
			validate: func(t *testing.T, cfg *HUDConfig) {
				if len(cfg.Bars) != 1 {
					t.Fatalf("Bars: got %d entries, want 1", len(cfg.Bars))
				}
				bar, ok := cfg.Bar("mana")
				if !ok || bar.Max != 5 || bar.Initial != 2 || bar.AnimIDEmpty != "mana-empty" {
					t.Errorf("Bar mana: got %+v", bar)
				}
				if _, ok := cfg.Bar("health"); ok {
					t.Error("默认的 health 条应被替换")
				}
			},
		},
		{
			name: "条形指示器初始值超过最大值",
			yamlContent: `
bars:
  - id: health
    max: 3
    initial: 4
`,
			wantErr:     true,
			errContains: "initial must be within",
		},
		{
			name: "条形指示器 ID 重复",
			yamlContent: `
bars:
  - id: health
  - id: health
`,
			wantErr:     true,
			errContains: "duplicate id",
		},
		{
			name: "条形指示器缺少 ID",
			yamlContent: `
bars:
  - text: "HP"
`,
			wantErr:     true,
			errContains: "id is required",
		},
		{
			name:        "非法 YAML",
			yamlContent: "button: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseHUDConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadHUDConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hud.yaml")
	if err := os.WriteFile(path, []byte("font:\n  size: 18\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadHUDConfig(path)
	if err != nil {
		t.Fatalf("LoadHUDConfig() error: %v", err)
	}
	if cfg.Font.Size != 18 {
		t.Errorf("Font size: got %v, want 18", cfg.Font.Size)
	}
}

func TestLoadHUDConfig_FileNotFound(t *testing.T) {
	_, err := LoadHUDConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read hud config") {
		t.Errorf("unexpected error: %v", err)
	}
}
