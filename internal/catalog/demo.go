package catalog

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/desertthunder/spotui/internal/models"
)

// trackNamespace seeds deterministic track IDs.
var trackNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://spotui.local/tracks"))

type song struct {
	title, artist, album string
	duration             int
}

var songPool = []song{
	{"Levitating", "Dua Lipa", "Future Nostalgia", 203},
	{"Blinding Lights", "The Weeknd", "After Hours", 200},
	{"Save Your Tears", "The Weeknd", "After Hours", 215},
	{"Redbone", "Childish Gambino", "Awaken, My Love!", 327},
	{"greedy", "Tate McRae", "THINK LATER", 131},
	{"yes, and?", "Ariana Grande", "eternal sunshine", 214},
	{"LALALALA", "Stray Kids", "ROCK-STAR", 190},
	{"Lose Yourself", "The Kid LAROI", "THE FIRST TIME", 164},
	{"Under the Influence", "Chris Brown", "Indigo", 184},
	{"Animals", "Martin Garrix", "Animals", 303},
	{"Strobe", "deadmau5", "For Lack of a Better Name", 637},
	{"Midnight City", "M83", "Hurry Up, We're Dreaming", 243},
}

// Demo is the built-in [Catalog].
type Demo struct {
	playlists []models.Playlist
	start     []models.Category
	discover  []models.Playlist
	browseAll []models.Category
	shortcuts []models.Playlist
	library   []models.LibraryItem
}

var _ Catalog = (*Demo)(nil)

// NewDemo builds the demo catalog.
func NewDemo() *Demo {
	return &Demo{
		playlists: []models.Playlist{
			{ID: "1", Title: "Discover Weekly", SongCount: 30, Owner: "Spotify", CoverImage: cover("1DB954", "DW")},
			{ID: "2", Title: "Release Radar", SongCount: 25, Owner: "Spotify", CoverImage: cover("1DB954", "RR")},
			{ID: "3", Title: "Daily Mix 1", SongCount: 50, Owner: "Spotify", CoverImage: cover("1DB954", "DM1")},
			{ID: "4", Title: "Chill Vibes", SongCount: 40, Owner: "Spotify", CoverImage: cover("1DB954", "CV")},
			{ID: "5", Title: "Workout Mix", SongCount: 35, Owner: "Spotify", CoverImage: cover("1DB954", "WM")},
		},
		start: []models.Category{
			{ID: "1", Title: "Music", Color: "#FF6B9D"},
			{ID: "2", Title: "Podcasts", Color: "#1E7B4A"},
			{ID: "3", Title: "Live Events", Color: "#8B5CF6"},
			{ID: "4", Title: "K-Pop ON! (온) Hub", Color: "#1E88E5"},
		},
		discover: []models.Playlist{
			{ID: "d1", Title: "Music for you"},
			{ID: "d2", Title: "#pinoy drill"},
			{ID: "d3", Title: "#downtown vibes"},
		},
		browseAll: []models.Category{
			{ID: "b1", Title: "Made For You", Color: "#8B5CF6"},
			{ID: "b2", Title: "Upcoming Releases", Color: "#1E7B4A"},
		},
		shortcuts: []models.Playlist{
			{ID: "s1", Title: "DJ"},
			{ID: "s2", Title: "Liked Songs"},
			{ID: "s3", Title: "house"},
			{ID: "s4", Title: "progressive thoughts"},
			{ID: "s5", Title: "EDM House Mix"},
			{ID: "s6", Title: "This Is Chris Brown"},
		},
		library: []models.LibraryItem{
			{ID: "1", Kind: models.KindPlaylist, Title: "playlist1"},
			{ID: "2", Kind: models.KindPlaylist, Title: "playlist2", Subtitle: "Tap to start"},
			{ID: "3", Kind: models.KindPlaylist, Title: "playlist3"},
			{ID: "4", Kind: models.KindPlaylist, Title: "Liked Songs", Count: 561, Pinned: true},
			{ID: "5", Kind: models.KindArtist, Title: "playlist5"},
			{ID: "6", Kind: models.KindPlaylist, Title: "playlist6"},
			{ID: "7", Kind: models.KindArtist, Title: "Childish Gambino"},
		},
	}
}

func cover(bg, text string) string {
	return fmt.Sprintf("https://via.placeholder.com/200x200/%s/FFFFFF?text=%s", bg, text)
}

func (d *Demo) Name() string { return "demo" }

// Home builds the shortcut grid, the New Music Friday row and the "Made For" row of daily mixes.
func (d *Demo) Home(ctx context.Context, username string) (*HomeFeed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if username == "" {
		username = "you"
	}

	mixes := make([]models.Playlist, 0, 5)
	for n := 1; n <= 5; n++ {
		mixes = append(mixes, models.Playlist{
			ID:    "mix" + strconv.Itoa(n),
			Title: fmt.Sprintf("Daily Mix 0%d", n),
			Owner: "Spotify",
		})
	}

	return &HomeFeed{
		Shortcuts: slices.Clone(d.shortcuts),
		Sections: []Section{
			{
				Title: "It's New Music Friday!",
				Items: []models.Playlist{
					{ID: "nmf", Title: "New Music Friday", Description: "Ariana Grande, Tate McRae, Stray Kids, The Kid LAROI,..."},
					{ID: "2", Title: "Release Radar", Description: "Catch all the latest music from artists you follow, plus new singles"},
					{ID: "1", Title: "Discover Weekly", Description: "Olivia De sombr, A"},
				},
			},
			{Title: "Made For " + username, Items: mixes},
		},
	}, nil
}

func (d *Demo) BrowseCategories(ctx context.Context) (*Browse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Browse{
		Start:     slices.Clone(d.start),
		Discover:  slices.Clone(d.discover),
		BrowseAll: slices.Clone(d.browseAll),
	}, nil
}

func (d *Demo) Library(ctx context.Context, kind models.LibraryKind) ([]models.LibraryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := make([]models.LibraryItem, 0, len(d.library))
	for _, item := range d.library {
		if kind == "" || item.Kind == kind {
			items = append(items, item)
		}
	}
	return items, nil
}

func (d *Demo) Playlists(ctx context.Context) ([]models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(d.playlists), nil
}

// Playlist returns one of the five demo playlists with SongCount generated tracks.
func (d *Demo) Playlist(ctx context.Context, id string) (*models.PlaylistExport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(d.playlists, func(p models.Playlist) bool { return p.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrPlaylistNotFound, id)
	}

	p := d.playlists[idx]
	return &models.PlaylistExport{Playlist: p, Tracks: generateTracks(p, idx)}, nil
}

// generateTracks walks the song pool with a per-playlist offset and stride.
func generateTracks(p models.Playlist, seed int) []models.Track {
	tracks := make([]models.Track, 0, p.SongCount)
	stride := 2*seed + 1
	for i := range p.SongCount {
		s := songPool[(seed+i*stride)%len(songPool)]
		tracks = append(tracks, models.Track{
			ID:       uuid.NewSHA1(trackNamespace, []byte(p.ID+":"+strconv.Itoa(i))).String(),
			Title:    s.title,
			Artist:   s.artist,
			Album:    s.album,
			Duration: s.duration,
		})
	}
	return tracks
}

func (d *Demo) index() []Result {
	var out []Result
	add := func(kind ResultKind, id, title, subtitle string) {
		out = append(out, Result{Kind: kind, ID: id, Title: title, Subtitle: subtitle})
	}

	for _, c := range d.start {
		add(ResultCategory, c.ID, c.Title, "")
	}
	for _, c := range d.browseAll {
		add(ResultCategory, c.ID, c.Title, "")
	}
	for _, p := range d.playlists {
		add(ResultPlaylist, p.ID, p.Title, Describe(models.LibraryItem{Kind: models.KindPlaylist, Count: p.SongCount}, p.Owner))
	}
	for _, p := range d.discover {
		add(ResultPlaylist, p.ID, p.Title, "")
	}
	for _, item := range d.library {
		add(ResultLibrary, item.ID, item.Title, string(item.Kind))
	}
	for i, s := range songPool {
		add(ResultTrack, "t"+strconv.Itoa(i), s.title, s.artist)
	}
	return out
}

// Search matches query against every title and artist. An empty query returns no results.
func (d *Demo) Search(ctx context.Context, query string) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	var results []Result
	for _, entry := range d.index() {
		dist := fuzzy.RankMatchFold(query, entry.Title)
		if entry.Kind == ResultTrack {
			if alt := fuzzy.RankMatchFold(query, entry.Subtitle); alt >= 0 && (dist < 0 || alt < dist) {
				dist = alt
			}
		}
		if dist < 0 {
			continue
		}
		entry.Distance = dist
		results = append(results, entry)
	}

	slices.SortStableFunc(results, func(a, b Result) int { return a.Distance - b.Distance })
	return results, nil
}

// Describe renders the secondary line of a library row.
func Describe(item models.LibraryItem, owner string) string {
	switch {
	case item.Subtitle != "":
		return item.Subtitle
	case item.Kind == models.KindArtist:
		return "Artist"
	case item.Count > 0:
		return fmt.Sprintf("Playlist • %s songs", humanize.Comma(int64(item.Count)))
	case owner != "":
		return "Playlist • " + owner
	default:
		return string(item.Kind)
	}
}
