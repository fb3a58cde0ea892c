package playlist

// Playlist has exactly one owner; songs are attached via playlistsongs
// rows and modelled separately.
type Playlist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

// PlaylistSummary is a playlist row joined with its owner's username,
// as returned by the playlist listing.
type PlaylistSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Song rows are owned by the song catalog; this service only reads
// existence and display fields.
type Song struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// PlaylistWithSongs is the playlist detail payload.
type PlaylistWithSongs struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Songs    []Song `json:"songs"`
}

// Activity is one immutable audit entry. Username and Title are
// snapshots resolved when the entry was written; renaming a song or
// user later does not rewrite history.
type Activity struct {
	Username string `json:"username"`
	Title    string `json:"title"`
	Action   string `json:"action"` // "add" | "delete"
	Time     string `json:"time"`
}

// PlaylistActivities groups a playlist's audit entries. The order is
// whatever the store returns; callers must not assume chronological.
type PlaylistActivities struct {
	PlaylistID string     `json:"playlistId"`
	Activities []Activity `json:"activities"`
}

// User is the subset of the users table this service reads.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

const (
	actionAdd    = "add"
	actionDelete = "delete"
)
