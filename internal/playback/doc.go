package playback

// Package playback decides which of the mounted media surfaces should be
// playing. It consumes visibility reports from the feed view, keeps at most
// one item playing (the most centered one, unless the user paused it by
// hand), and handles the muted-retry fallback when autoplay with sound is
// blocked by platform policy.
