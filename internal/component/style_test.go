package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKebab(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MyButton", "my-button"},
		{"button", "button"},
		{"A", "a"},
		{"ABButton", "abbutton"},
		{"myFancyCard", "my-fancy-card"},
		{"Button2Go", "button2-go"},
		{"aBC", "a-bc"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Kebab(tt.in))
		})
	}
}

func TestNewStyleArtifact(t *testing.T) {
	tests := []struct {
		name      string
		style     StyleVariant
		component string
		want      StyleArtifact
	}{
		{
			name:      "plain css",
			style:     StyleCSS,
			component: "Card",
			want: StyleArtifact{
				FileName:  "Card.css",
				Import:    "import './Card.css';\n\n",
				ClassName: ` className="Card"`,
				Content:   "",
			},
		},
		{
			name:      "plain scss",
			style:     StyleSCSS,
			component: "MyButton",
			want: StyleArtifact{
				FileName:  "MyButton.scss",
				Import:    "import './MyButton.scss';\n\n",
				ClassName: ` className="MyButton"`,
			},
		},
		{
			name:      "scss module with hyphen uses bracket access",
			style:     StyleSCSSModule,
			component: "MyButton",
			want: StyleArtifact{
				FileName:  "my-button.module.scss",
				Import:    "import styles from './my-button.module.scss';\n\n",
				ClassName: " className={styles['my-button']}",
				Content:   ".my-button {\n\n}",
			},
		},
		{
			name:      "css module without hyphen uses dot access",
			style:     StyleCSSModule,
			component: "Card",
			want: StyleArtifact{
				FileName:  "card.module.css",
				Import:    "import styles from './card.module.css';\n\n",
				ClassName: " className={styles.card}",
				Content:   ".card {\n\n}",
			},
		},
		{
			name:      "none",
			style:     StyleNone,
			component: "Card",
			want:      StyleArtifact{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewStyleArtifact(tt.style, tt.component)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.style != StyleNone, got.HasFile())
		})
	}
}
