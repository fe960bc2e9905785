package media

import (
	"context"
	"io"
	"testing"
)

type recordingStore struct {
	removed []string
	kinds   []Kind
	fail    bool
}

func (r *recordingStore) Upload(ctx context.Context, folder, fileName string, kind Kind, rd io.Reader) (Asset, error) {
	return Asset{}, nil
}

func (r *recordingStore) Remove(ctx context.Context, publicID string, kind Kind) error {
	r.removed = append(r.removed, publicID)
	r.kinds = append(r.kinds, kind)
	if r.fail {
		return ErrUpstream
	}
	return nil
}

func TestCleanupSkipsEmptyAssets(t *testing.T) {
	store := &recordingStore{}

	Cleanup(context.Background(), store,
		Asset{},
		Asset{URL: "https://media.test/a", PublicID: "a", Kind: KindImage},
	)

	if len(store.removed) != 1 || store.removed[0] != "a" {
		t.Fatalf("expected only the non-empty asset removed, got %v", store.removed)
	}
}

func TestCleanupDefaultsKindToImage(t *testing.T) {
	store := &recordingStore{}

	Cleanup(context.Background(), store, Asset{URL: "u", PublicID: "a"})

	if len(store.kinds) != 1 || store.kinds[0] != KindImage {
		t.Fatalf("expected image kind default, got %v", store.kinds)
	}
}

func TestCleanupContinuesPastFailures(t *testing.T) {
	store := &recordingStore{fail: true}

	Cleanup(context.Background(), store,
		Asset{PublicID: "a", Kind: KindRaw},
		Asset{PublicID: "b", Kind: KindImage},
	)

	if len(store.removed) != 2 {
		t.Fatalf("expected both removals attempted, got %v", store.removed)
	}
}

func TestAssetPaired(t *testing.T) {
	cases := []struct {
		asset Asset
		want  bool
	}{
		{Asset{}, true},
		{Asset{URL: "u", PublicID: "p"}, true},
		{Asset{URL: "u"}, false},
		{Asset{PublicID: "p"}, true},
	}
	for i, tc := range cases {
		if got := tc.asset.Paired(); got != tc.want {
			t.Fatalf("case %d: Paired() = %v, want %v", i, got, tc.want)
		}
	}
}
