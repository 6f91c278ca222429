// Package sandbox is the flat-file store behind the demo mint endpoint. It is
// independent of the relational store: nothing written here is visible to the
// profile or verification endpoints.
package sandbox

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"soulid/internal/utils"
)

const idLength = 9

type Profile struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Region        string   `json:"region"`
	Age           int      `json:"age"`
	SkillTags     []string `json:"skillTags"`
	WalletAddress string   `json:"walletAddress"`
	IDFile        string   `json:"idFile,omitempty"`
}

type SoulboundToken struct {
	ID          string `json:"id"`
	ProfileID   string `json:"profileId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Issuer      string `json:"issuer"`
	Evidence    string `json:"evidence,omitempty"`
	Type        string `json:"type"`
}

// Document is the on-disk layout
type Document struct {
	Profiles        []Profile        `json:"profiles"`
	SoulboundTokens []SoulboundToken `json:"soulboundTokens"`
}

// Store reads and rewrites the whole document on every call. The mutex only
// serializes callers inside this process.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Read returns the current document; a missing or unreadable file is empty
func (s *Store) Read() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *Store) read() Document {
	doc := Document{Profiles: []Profile{}, SoulboundTokens: []SoulboundToken{}}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return doc
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{Profiles: []Profile{}, SoulboundTokens: []SoulboundToken{}}
	}
	if doc.Profiles == nil {
		doc.Profiles = []Profile{}
	}
	if doc.SoulboundTokens == nil {
		doc.SoulboundTokens = []SoulboundToken{}
	}
	return doc
}

func (s *Store) write(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	return os.WriteFile(s.path, data, 0o644)
}

// AddProfile assigns a short ID and appends the profile
func (s *Store) AddProfile(p Profile) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := utils.ShortID(idLength)
	if err != nil {
		return Profile{}, err
	}
	p.ID = id
	doc := s.read()
	doc.Profiles = append(doc.Profiles, p)
	if err := s.write(doc); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Store) GetProfile(id string) (Profile, bool) {
	for _, p := range s.Read().Profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// AddSoulboundToken assigns a short ID and appends the token
func (s *Store) AddSoulboundToken(t SoulboundToken) (SoulboundToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := utils.ShortID(idLength)
	if err != nil {
		return SoulboundToken{}, err
	}
	t.ID = id
	doc := s.read()
	doc.SoulboundTokens = append(doc.SoulboundTokens, t)
	if err := s.write(doc); err != nil {
		return SoulboundToken{}, err
	}
	return t, nil
}

func (s *Store) GetSoulboundTokens(profileID string) []SoulboundToken {
	out := []SoulboundToken{}
	for _, t := range s.Read().SoulboundTokens {
		if t.ProfileID == profileID {
			out = append(out, t)
		}
	}
	return out
}
