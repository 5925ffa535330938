//go:build unit

package member_test

import (
	"testing"

	"vista-ecoupon/internal/domain/member"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierVariants(t *testing.T) {
	testCases := []struct {
		name       string
		identifier string
		want       []string
	}{
		{
			name:       "leading zero adds stripped variant",
			identifier: "0812345678",
			want:       []string{"0812345678", "812345678"},
		},
		{
			name:       "nine digits adds zero-prefixed variant",
			identifier: "812345678",
			want:       []string{"812345678", "0812345678"},
		},
		{
			name:       "formatting characters are stripped",
			identifier: " 081-234-5678 ",
			want:       []string{"0812345678", "812345678"},
		},
		{
			name:       "application number kept as is",
			identifier: "12345678",
			want:       []string{"12345678"},
		},
		{
			name:       "no digits yields nothing",
			identifier: "abc",
			want:       nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, member.IdentifierVariants(tc.identifier))
		})
	}
}

func TestMember_DisplayName(t *testing.T) {
	named := member.Member{FirstName: "Somchai", LastName: "Jaidee"}
	assert.Equal(t, "Somchai Jaidee", named.DisplayName())

	firstOnly := member.Member{FirstName: "Somchai"}
	assert.Equal(t, "Somchai", firstOnly.DisplayName())

	anonymous := member.Member{}
	assert.Equal(t, "สมาชิก Vista Café", anonymous.DisplayName())
}

func TestEntitlement_IsMember(t *testing.T) {
	assert.True(t, member.EntitlementMember.IsMember())
	assert.False(t, member.EntitlementNonMember.IsMember())
}
