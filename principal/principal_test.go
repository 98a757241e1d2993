package principal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nexus-iam/sentinel/principal"
)

func TestParseKind(t *testing.T) {
	kind, err := principal.ParseKind("USER")
	require.NoError(t, err)
	require.Equal(t, principal.KindUser, kind)

	kind, err = principal.ParseKind("CLIENT")
	require.NoError(t, err)
	require.Equal(t, principal.KindClient, kind)

	_, err = principal.ParseKind("user")
	require.Error(t, err)

	_, err = principal.ParseKind("")
	require.Error(t, err)
}

func TestKindValid(t *testing.T) {
	require.True(t, principal.KindUser.Valid())
	require.True(t, principal.KindClient.Valid())
	require.False(t, principal.Kind("SERVICE_ACCOUNT").Valid())
}
