package youtube

import "fmt"

// Identity is a simulated client profile presented to the player API.
// The set is closed: Primary and Fallback are the only valid values.
type Identity int

const (
	// Primary poses as the iOS app. Its answers carry an HLS manifest with
	// adaptive quality, but region and consent checks reject it more often.
	Primary Identity = iota

	// Fallback poses as the Android app. Less capable, more widely accepted.
	Fallback
)

const language = "en"

// profile holds the static values of one identity.
type profile struct {
	clientName    string
	clientVersion string
	device        string
	userAgent     string
	androidSDK    int
}

var (
	iosProfile = profile{
		clientName:    "IOS",
		clientVersion: "19.29.1",
		device:        "iPhone16,2",
		userAgent:     "com.google.ios.youtube/19.29.1 (iPhone16,2; U; CPU iOS 17_5_1 like Mac OS X;)",
	}

	androidProfile = profile{
		clientName:    "ANDROID",
		clientVersion: "19.02.39",
		device:        "Android 14",
		userAgent:     "com.google.android.youtube/19.02.39 (Linux; U; Android 14) gzip",
		androidSDK:    34,
	}
)

func (i Identity) profile() profile {
	switch i {
	case Primary:
		return iosProfile
	case Fallback:
		return androidProfile
	default:
		panic(fmt.Sprintf("youtube: unknown identity %d", int(i)))
	}
}

// String returns the client name sent upstream.
func (i Identity) String() string {
	switch i {
	case Primary, Fallback:
		return i.profile().clientName
	default:
		return fmt.Sprintf("Identity(%d)", int(i))
	}
}

// ClientVersion returns the client version sent upstream.
func (i Identity) ClientVersion() string { return i.profile().clientVersion }

// Device returns the device descriptor of the identity.
func (i Identity) Device() string { return i.profile().device }

// UserAgent returns the User-Agent header value of the identity.
func (i Identity) UserAgent() string { return i.profile().userAgent }

type iosClient struct {
	ClientName    string `json:"clientName"`
	ClientVersion string `json:"clientVersion"`
	DeviceModel   string `json:"deviceModel"`
	UserAgent     string `json:"userAgent"`
	HL            string `json:"hl"`
}

type androidClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSDKVersion int    `json:"androidSdkVersion"`
	HL                string `json:"hl"`
}

type requestContext[C any] struct {
	Client C `json:"client"`
}

type playerRequest[C any] struct {
	Context        requestContext[C] `json:"context"`
	VideoID        string            `json:"videoId"`
	ContentCheckOK bool              `json:"contentCheckOk,omitempty"`
	RacyCheckOK    bool              `json:"racyCheckOk,omitempty"`
}

// payload builds the JSON request body of the identity for id.
func (i Identity) payload(id string) any {
	p := i.profile()

	switch i {
	case Primary:
		return playerRequest[iosClient]{
			Context: requestContext[iosClient]{Client: iosClient{
				ClientName:    p.clientName,
				ClientVersion: p.clientVersion,
				DeviceModel:   p.device,
				UserAgent:     p.userAgent,
				HL:            language,
			}},
			VideoID: id,
		}
	case Fallback:
		return playerRequest[androidClient]{
			Context: requestContext[androidClient]{Client: androidClient{
				ClientName:        p.clientName,
				ClientVersion:     p.clientVersion,
				AndroidSDKVersion: p.androidSDK,
				HL:                language,
			}},
			VideoID:        id,
			ContentCheckOK: true,
			RacyCheckOK:    true,
		}
	default:
		panic(fmt.Sprintf("youtube: unknown identity %d", int(i)))
	}
}
