package player

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeMediaTarget(t *testing.T) {
	Convey("Given candidate media targets", t, func() {
		Convey("http and https URLs are accepted", func() {
			for _, in := range []string{
				"https://manifest.googlevideo.com/api/manifest/hls_variant/id/x",
				"http://example.com/video.mp4",
				"  https://example.com/padded  ",
			} {
				out, err := sanitizeMediaTarget(in)
				So(err, ShouldBeNil)
				So(out, ShouldNotStartWith, " ")
			}
		})

		Convey("Other schemes are rejected", func() {
			for _, in := range []string{"file:///etc/passwd", "javascript:alert(1)", "ytdl://abc"} {
				_, err := sanitizeMediaTarget(in)
				So(err, ShouldNotBeNil)
			}
		})

		Convey("Flag-like and control-character inputs are rejected", func() {
			_, err := sanitizeMediaTarget("--script=evil.lua")
			So(err, ShouldNotBeNil)

			_, err = sanitizeMediaTarget("https://example.com/\nnext")
			So(err, ShouldNotBeNil)

			_, err = sanitizeMediaTarget("   ")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSanitizeTitle(t *testing.T) {
	Convey("Titles lose line breaks, tabs and NUL bytes", t, func() {
		So(sanitizeTitle(" a\nb\tc\x00 "), ShouldEqual, "a b c")
	})
}

func TestNew(t *testing.T) {
	Convey("Given backend names", t, func() {
		Convey("Known names build the matching backend", func() {
			p, err := New("mpv")
			So(err, ShouldBeNil)
			So(p, ShouldHaveSameTypeAs, &MPVPlayer{})

			p, err = New(" IINA ")
			So(err, ShouldBeNil)
			So(p, ShouldHaveSameTypeAs, &IINAPlayer{})

			p, err = New("system")
			So(err, ShouldBeNil)
			So(p, ShouldHaveSameTypeAs, &SystemPlayer{})
		})

		Convey("Unknown names list the alternatives", func() {
			_, err := New("vlc")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "mpv, iina, system")
		})

		Convey("Only mpv needs a binary on PATH", func() {
			bin, ok := Executable(MPV)
			So(ok, ShouldBeTrue)
			So(bin, ShouldEqual, "mpv")

			_, ok = Executable(System)
			So(ok, ShouldBeFalse)
			So(Installed(System), ShouldBeTrue)
		})
	})
}

func TestArgs(t *testing.T) {
	Convey("mpv receives the socket and title before a -- separated target", t, func() {
		args := mpvArgs("/tmp/s.sock", "https://example.com/v", "Title")
		So(args, ShouldContain, "--input-ipc-server=/tmp/s.sock")
		So(args, ShouldContain, "--force-media-title=Title")
		So(args[len(args)-2], ShouldEqual, "--")
		So(args[len(args)-1], ShouldEqual, "https://example.com/v")
	})

	Convey("IINA forwards the title as an mpv option", t, func() {
		args := iinaArgs("https://example.com/v", "Title")
		So(args[:3], ShouldResemble, []string{"-W", "-a", "IINA"})
		So(args, ShouldContain, "--mpv-force-media-title=Title")
	})

	Convey("The system handler depends on the platform", t, func() {
		cmd, ok := openCommand("linux", "https://example.com")
		So(ok, ShouldBeTrue)
		So(filepath.Base(cmd.Path), ShouldStartWith, "xdg-open")

		cmd, ok = openCommand("darwin", "https://example.com")
		So(ok, ShouldBeTrue)
		So(cmd.Args, ShouldResemble, []string{"open", "https://example.com"})

		_, ok = openCommand("plan9", "https://example.com")
		So(ok, ShouldBeFalse)
	})

	Convey("IPC responses with an error field fail", t, func() {
		_, err := decodeResponse([]byte(`{"data":null,"error":"property unavailable"}` + "\n"))
		So(err, ShouldNotBeNil)

		data, err := decodeResponse([]byte(`{"data":1.5,"error":"success"}` + "\n"))
		So(err, ShouldBeNil)
		So(data, ShouldEqual, 1.5)
	})
}
