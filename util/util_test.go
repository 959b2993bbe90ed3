package util

import (
	"errors"
	"io/fs"
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidsel/vidsel/filesystem"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "video", "videos"), ShouldEqual, "1 video")
		So(Quantify(2, "video", "videos"), ShouldEqual, "2 videos")
		So(Quantify(0, "video", "videos"), ShouldEqual, "0 videos")
	})
}

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<first>\w+)\s(?P<last>\w+)`)
		groups := ReGroups(re, "John Doe")
		So(groups["first"], ShouldEqual, "John")
		So(groups["last"], ShouldEqual, "Doe")
		So(ReGroups(re, "single"), ShouldBeEmpty)
	})
}

func TestWrap(t *testing.T) {
	Convey("Wrap", t, func() {
		So(Wrap("abcdef", 3), ShouldEqual, "abc\ndef")
		So(Wrap("abcdef", 0), ShouldEqual, "abcdef")
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.UseMemory()
		api := filesystem.API()
		So(api.MkdirAll("/tmp/vidsel/sub", 0o755), ShouldBeNil)
		So(api.WriteFile("/tmp/vidsel/sub/file", []byte("x"), 0o644), ShouldBeNil)

		So(Delete("/tmp/vidsel"), ShouldBeNil)
		exists, _ := api.Exists("/tmp/vidsel/sub/file")
		So(exists, ShouldBeFalse)

		So(Delete("/missing"), ShouldNotBeNil)
		So(errors.Is(Delete("/missing"), fs.ErrNotExist), ShouldBeTrue)
	})
}

func TestVideoID(t *testing.T) {
	Convey("VideoID", t, func() {
		Convey("Should pass bare identifiers through", func() {
			So(VideoID("abc123"), ShouldEqual, "abc123")
			So(VideoID("  dQw4w9WgXcQ \n"), ShouldEqual, "dQw4w9WgXcQ")
			So(VideoID(""), ShouldEqual, "")
		})

		Convey("Should read watch links", func() {
			So(VideoID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42"), ShouldEqual, "dQw4w9WgXcQ")
			So(VideoID("https://m.youtube.com/watch?v=abc-_123"), ShouldEqual, "abc-_123")
			So(VideoID("https://music.youtube.com/watch?v=abc123"), ShouldEqual, "abc123")
		})

		Convey("Should read share, embed and shorts links", func() {
			So(VideoID("https://youtu.be/dQw4w9WgXcQ?si=xyz"), ShouldEqual, "dQw4w9WgXcQ")
			So(VideoID("https://www.youtube.com/embed/dQw4w9WgXcQ"), ShouldEqual, "dQw4w9WgXcQ")
			So(VideoID("https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ"), ShouldEqual, "dQw4w9WgXcQ")
			So(VideoID("https://youtube.com/shorts/abc123"), ShouldEqual, "abc123")
		})

		Convey("Should leave other links alone", func() {
			So(VideoID("https://example.com/watch?v=abc123"), ShouldEqual, "https://example.com/watch?v=abc123")
			So(VideoID("https://www.youtube.com/feed/trending"), ShouldEqual, "https://www.youtube.com/feed/trending")
		})
	})
}
