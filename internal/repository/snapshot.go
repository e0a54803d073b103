package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/limbo/habithero/pkg/entity"
)

// Durable state is two independent whole-collection snapshots under the
// data directory. Both carry an explicit schema version so a format change
// never gets parsed blindly.
const (
	snapshotVersion = 1
	usersFileName   = "users.json"
	habitsFileName  = "habits.json"
)

type usersSnapshot struct {
	Version int                     `json:"version"`
	Users   map[string]*entity.User `json:"users"`
}

type habitsSnapshot struct {
	Version int                   `json:"version"`
	Habits  map[int]*entity.Habit `json:"habits"`
}

// writeSnapshot encodes doc into path through a temp file and a rename, so
// a crash mid-write never leaves a torn snapshot behind.
func writeSnapshot(path string, doc any) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return errors.New("creating temp snapshot error: " + err.Error())
	}
	if err = sonic.ConfigDefault.NewEncoder(tmp).Encode(doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.New("encoding snapshot error: " + err.Error())
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.New("closing temp snapshot error: " + err.Error())
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.New("replacing snapshot error: " + err.Error())
	}
	return nil
}

// readUsersSnapshot loads the users collection. A missing file is an empty
// collection, not an error.
func readUsersSnapshot(path string) (map[string]*entity.User, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]*entity.User{}, nil
	}
	if err != nil {
		return nil, errors.New("reading users snapshot error: " + err.Error())
	}
	var doc usersSnapshot
	if err = sonic.Unmarshal(raw, &doc); err != nil {
		return nil, errors.New("decoding users snapshot error: " + err.Error())
	}
	if doc.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported users snapshot version %d", doc.Version)
	}
	if doc.Users == nil {
		doc.Users = map[string]*entity.User{}
	}
	return doc.Users, nil
}

func readHabitsSnapshot(path string) (map[int]*entity.Habit, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[int]*entity.Habit{}, nil
	}
	if err != nil {
		return nil, errors.New("reading habits snapshot error: " + err.Error())
	}
	var doc habitsSnapshot
	if err = sonic.Unmarshal(raw, &doc); err != nil {
		return nil, errors.New("decoding habits snapshot error: " + err.Error())
	}
	if doc.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported habits snapshot version %d", doc.Version)
	}
	if doc.Habits == nil {
		doc.Habits = map[int]*entity.Habit{}
	}
	return doc.Habits, nil
}
