package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"soulid/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProfile(t *testing.T) {
	s := newTestServer(t)

	w := s.postForm(t, "/api/create-profile", map[string]string{
		"name":          "  Alice ",
		"email":         "Alice@X.com",
		"walletAddress": aliceWallet,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Message string          `json:"message"`
		Profile ProfileResponse `json:"profile"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "Profile created successfully", resp.Message)
	assert.True(t, utils.IsUUIDShaped(resp.Profile.ID))
	assert.Equal(t, "Alice", resp.Profile.Name)
	assert.Equal(t, "alice@x.com", resp.Profile.Email)
	assert.Equal(t, lower(aliceWallet), resp.Profile.WalletAddress)
	assert.Nil(t, resp.Profile.ProfileImage)
	assert.NotEmpty(t, resp.Profile.CreatedAt)
}

func TestCreateProfileWithImage(t *testing.T) {
	s := newTestServer(t)

	w := s.postForm(t, "/api/create-profile", map[string]string{
		"name":          "Alice",
		"email":         "alice@x.com",
		"walletAddress": aliceWallet,
	}, &upload{field: "profileImage", filename: "me.png", content: "png-bytes"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Profile ProfileResponse `json:"profile"`
	}
	decode(t, w, &resp)
	require.NotNil(t, resp.Profile.ProfileImage)
	ref := *resp.Profile.ProfileImage
	assert.True(t, strings.HasPrefix(ref, "/uploads/"), ref)
	assert.True(t, strings.HasSuffix(ref, "-me.png"), ref)

	data, err := os.ReadFile(filepath.Join(s.uploadDir, strings.TrimPrefix(ref, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	// the stored image is served back
	served := s.get(ref)
	assert.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, "png-bytes", served.Body.String())
}

func TestCreateProfileFileAlias(t *testing.T) {
	s := newTestServer(t)

	w := s.postForm(t, "/api/create-profile", map[string]string{
		"name":          "Alice",
		"email":         "alice@x.com",
		"walletAddress": aliceWallet,
	}, &upload{field: "file", filename: "avatar.jpg", content: "jpg"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Profile ProfileResponse `json:"profile"`
	}
	decode(t, w, &resp)
	require.NotNil(t, resp.Profile.ProfileImage)
	assert.True(t, strings.HasSuffix(*resp.Profile.ProfileImage, "-avatar.jpg"))
}

func TestCreateProfileValidation(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]string
		message string
	}{
		{
			name:    "missing name",
			fields:  map[string]string{"email": "a@x.com", "walletAddress": aliceWallet},
			message: "Missing required fields",
		},
		{
			name:    "blank name",
			fields:  map[string]string{"name": "   ", "email": "a@x.com", "walletAddress": aliceWallet},
			message: "Missing required fields",
		},
		{
			name:    "missing wallet",
			fields:  map[string]string{"name": "A", "email": "a@x.com"},
			message: "Missing required fields",
		},
		{
			name:    "bad email",
			fields:  map[string]string{"name": "A", "email": "alice@x", "walletAddress": aliceWallet},
			message: "Invalid email format",
		},
		{
			name:    "short wallet",
			fields:  map[string]string{"name": "A", "email": "a@x.com", "walletAddress": "0x123"},
			message: "Invalid Ethereum address format",
		},
		{
			name:    "non hex wallet",
			fields:  map[string]string{"name": "A", "email": "a@x.com", "walletAddress": "0x" + strings.Repeat("z", 40)},
			message: "Invalid Ethereum address format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			w := s.postForm(t, "/api/create-profile", tt.fields, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.message, message(t, w))
		})
	}
}

func TestCreateProfileWalletDetails(t *testing.T) {
	s := newTestServer(t)
	w := s.postForm(t, "/api/create-profile", map[string]string{
		"name": "A", "email": "a@x.com", "walletAddress": "0x123",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Details utils.WalletAddressDetails `json:"details"`
	}
	decode(t, w, &body)
	assert.Equal(t, utils.WalletAddressDetails{Address: "0x123", Length: 5, StartsWith0x: true, HexOnly: false}, body.Details)
}

func TestCreateProfileDuplicates(t *testing.T) {
	s := newTestServer(t)
	s.createProfile(t, "Alice", "alice@x.com", aliceWallet)

	otherWallet := "0x" + strings.Repeat("1", 40)
	tests := []struct {
		name   string
		email  string
		wallet string
	}{
		{"same email different case", "ALICE@x.com", otherWallet},
		{"same wallet different case", "bob@x.com", lower(aliceWallet)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.postForm(t, "/api/create-profile", map[string]string{
				"name": "Bob", "email": tt.email, "walletAddress": tt.wallet,
			}, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, duplicateProfile, message(t, w))
		})
	}

	var count int64
	require.NoError(t, s.db.Table("profiles").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetProfile(t *testing.T) {
	s := newTestServer(t)
	id := s.createProfile(t, "Alice", "alice@x.com", aliceWallet)
	first := s.mintToken(t, degreeBody(id))
	second := s.mintToken(t, map[string]any{
		"profileId": id, "type": "skill", "title": "Go", "issuer": "SoulID", "date": "2024-02-01", "skillName": "Go",
	})

	for _, path := range []string{"/api/get-profile?id=" + id, "/api/get-profile?email=ALICE@x.com"} {
		w := s.get(path)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp ProfileWithTokens
		decode(t, w, &resp)
		assert.Equal(t, id, resp.Profile.ID)
		require.Len(t, resp.Tokens, 2)
		assert.Equal(t, first.ID, resp.Tokens[0].ID)
		assert.Equal(t, second.ID, resp.Tokens[1].ID)
	}
}

func TestGetProfileIDTakesPrecedence(t *testing.T) {
	s := newTestServer(t)
	alice := s.createProfile(t, "Alice", "alice@x.com", aliceWallet)
	s.createProfile(t, "Bob", "bob@x.com", "0x"+strings.Repeat("2", 40))

	w := s.get("/api/get-profile?id=" + alice + "&email=bob@x.com")
	require.Equal(t, http.StatusOK, w.Code)
	var resp ProfileWithTokens
	decode(t, w, &resp)
	assert.Equal(t, "Alice", resp.Profile.Name)
}

func TestGetProfileErrors(t *testing.T) {
	s := newTestServer(t)

	w := s.get("/api/get-profile")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User ID or email is required", message(t, w))

	w = s.get("/api/get-profile?id=" + unusedUUID)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Profile not found", message(t, w))

	w = s.get("/api/get-profile?email=nobody@x.com")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProfileCacheInvalidatedByMint(t *testing.T) {
	s := newTestServer(t)
	id := s.createProfile(t, "Alice", "alice@x.com", aliceWallet)

	w := s.get("/api/get-profile?id=" + id)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, s.redis.Exists(utils.ProfileCachePrefix+id))

	s.mintToken(t, degreeBody(id))
	assert.False(t, s.redis.Exists(utils.ProfileCachePrefix+id))

	w = s.get("/api/get-profile?id=" + id)
	require.Equal(t, http.StatusOK, w.Code)
	var resp ProfileWithTokens
	decode(t, w, &resp)
	assert.Len(t, resp.Tokens, 1)
}

func TestGetProfileServesFromCache(t *testing.T) {
	s := newTestServer(t)
	id := s.createProfile(t, "Alice", "alice@x.com", aliceWallet)
	require.Equal(t, http.StatusOK, s.get("/api/get-profile?id="+id).Code)

	// a rename behind the API's back is invisible until the entry expires
	require.NoError(t, s.db.Table("profiles").Where("id = ?", id).Update("name", "Changed").Error)
	w := s.get("/api/get-profile?id=" + id)
	var resp ProfileWithTokens
	decode(t, w, &resp)
	assert.Equal(t, "Alice", resp.Profile.Name)

	s.redis.FastForward(2 * profileCacheTTL)
	w = s.get("/api/get-profile?id=" + id)
	decode(t, w, &resp)
	assert.Equal(t, "Changed", resp.Profile.Name)
}
