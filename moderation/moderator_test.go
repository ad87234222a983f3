package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Censor_Replaces_Forbidden_Words(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"badword"}, '*')
	req.NoError(err)

	req.Equal("this is a *******", moderator.Censor("this is a badword"))
	req.Equal("clean sentence", moderator.Censor("clean sentence"))
}

func Test_Censor_Handles_Leet_And_Case(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"badword"}, '*')
	req.NoError(err)

	req.Equal("*******", moderator.Censor("BadWord"))
	req.Equal("*******", moderator.Censor("b4dw0rd"))
	req.Equal("*********", moderator.Censor("b.a.d.word"))
}

func Test_Censor_Preserves_Surrounding_Text(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"badword"}, '*')
	req.NoError(err)

	req.Equal("say ******* twice: *******!", moderator.Censor("say badword twice: badword!"))
}

func Test_Default_Moderator_Loads_Embedded_Lists(t *testing.T) {
	req := require.New(t)
	moderator, err := NewDefaultModerator('*')
	req.NoError(err)

	censored := moderator.Censor("what the hell")
	req.NotEqual("what the hell", censored)
}
