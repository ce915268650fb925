package service

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

// memStore is an in-memory store.Transactor. A failed transaction body
// leaves no trace, like a rolled back serializable transaction.
type memStore struct {
	mu      sync.Mutex
	seq     int64
	notes   map[string]models.Note
	clients map[[2]string]models.Client
	groups  map[string]models.ClientGroup

	// failNext, when set, is returned by the next Transact without running fn.
	failNext error
	calls    int
}

func newMemStore() *memStore {
	return &memStore{
		notes:   map[string]models.Note{},
		clients: map[[2]string]models.Client{},
		groups:  map[string]models.ClientGroup{},
	}
}

func (m *memStore) Transact(ctx context.Context, fn store.TxFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}

	seq := m.seq
	notes := maps.Clone(m.notes)
	clients := maps.Clone(m.clients)
	groups := maps.Clone(m.groups)

	if err := fn(ctx, memRepos{m}); err != nil {
		m.seq, m.notes, m.clients, m.groups = seq, notes, clients, groups
		return err
	}
	return nil
}

func (m *memStore) note(id string) (models.Note, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	return n, ok
}

func (m *memStore) client(groupID, id string) models.Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clients[[2]string{groupID, id}]
}

func (m *memStore) group(id string) models.ClientGroup {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.groups[id]
}

type memRepos struct{ m *memStore }

func (r memRepos) Notes() store.NoteRepository               { return memNotes(r) }
func (r memRepos) Clients() store.ClientRepository           { return memClients(r) }
func (r memRepos) ClientGroups() store.ClientGroupRepository { return memGroups(r) }

type memNotes struct{ m *memStore }

func (r memNotes) GetByID(_ context.Context, id, userID string) (models.Note, error) {
	n, ok := r.m.notes[id]
	if !ok {
		return models.Note{}, store.ErrNotFound
	}
	if n.UserID != userID {
		return models.Note{}, store.ErrUnauthorized
	}
	return n, nil
}

func (r memNotes) Create(_ context.Context, note models.Note) (models.Note, error) {
	if _, ok := r.m.notes[note.ID]; ok {
		return models.Note{}, store.ErrAlreadyExists
	}
	r.m.seq++
	note.Version = r.m.seq
	if note.Files == nil {
		note.Files = models.StoredFiles{}
	}
	r.m.notes[note.ID] = note
	return note, nil
}

func (r memNotes) Update(_ context.Context, update models.NoteUpdate) (models.Note, error) {
	n, ok := r.m.notes[update.ID]
	if !ok || n.UserID != update.UserID {
		return models.Note{}, store.ErrNotFound
	}
	if update.Content != nil {
		n.Content = *update.Content
	}
	if update.Files != nil {
		n.Files = *update.Files
	}
	r.m.seq++
	n.Version = r.m.seq
	r.m.notes[n.ID] = n
	return n, nil
}

func (r memNotes) Delete(_ context.Context, id, userID string) error {
	n, ok := r.m.notes[id]
	if !ok || n.UserID != userID {
		return store.ErrNotFound
	}
	delete(r.m.notes, id)
	return nil
}

func (r memNotes) FindMany(_ context.Context, ids []string) ([]models.Note, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	notes := make([]models.Note, 0, len(ids))
	for _, id := range slices.Sorted(slices.Values(ids)) {
		if n, ok := r.m.notes[id]; ok {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

func (r memNotes) FindMeta(_ context.Context, userID string) ([]models.RowMeta, error) {
	metas := make([]models.RowMeta, 0)
	for _, n := range r.m.notes {
		if n.UserID == userID {
			metas = append(metas, models.RowMeta{ID: n.ID, RowVersion: n.Version})
		}
	}
	return metas, nil
}

type memClients struct{ m *memStore }

func (r memClients) GetByID(_ context.Context, id, clientGroupID string) (models.Client, error) {
	if c, ok := r.m.clients[[2]string{clientGroupID, id}]; ok {
		return c, nil
	}
	return models.Client{ID: id, ClientGroupID: clientGroupID}, nil
}

func (r memClients) Upsert(_ context.Context, client models.Client) error {
	if _, ok := r.m.groups[client.ClientGroupID]; !ok {
		return store.ErrInvalidInput
	}
	r.m.clients[[2]string{client.ClientGroupID, client.ID}] = client
	return nil
}

func (r memClients) FindMeta(_ context.Context, clientGroupID string) ([]models.RowMeta, error) {
	metas := make([]models.RowMeta, 0)
	for key, c := range r.m.clients {
		if key[0] == clientGroupID {
			metas = append(metas, models.RowMeta{ID: c.ID, RowVersion: c.LastMutationID})
		}
	}
	return metas, nil
}

type memGroups struct{ m *memStore }

func (r memGroups) GetByID(_ context.Context, id, userID string) (models.ClientGroup, error) {
	g, ok := r.m.groups[id]
	if !ok {
		return models.ClientGroup{ID: id, UserID: userID}, nil
	}
	if g.UserID != userID {
		return models.ClientGroup{}, store.ErrUnauthorized
	}
	return g, nil
}

func (r memGroups) Upsert(_ context.Context, group models.ClientGroup) (models.ClientGroup, error) {
	if stored, ok := r.m.groups[group.ID]; ok && stored.CVRVersion > group.CVRVersion {
		group.CVRVersion = stored.CVRVersion
	}
	r.m.groups[group.ID] = group
	return group, nil
}

// recordingNotifier counts pokes per user.
type recordingNotifier struct {
	mu    sync.Mutex
	pokes map[string]int
	err   error
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{pokes: map[string]int{}}
}

func (n *recordingNotifier) Notify(_ context.Context, userID string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pokes[userID]++
	return n.err
}

func (n *recordingNotifier) count(userID string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.pokes[userID]
}
