// The input package tracks keyboard state between frames, providing
// higher level constructs like pressed/released this frame.
//
// Window backends translate their native key events into Key values and feed them
// through HandleKeyEvent, so code reading input doesn't care which backend is running.
package input

type Key int32

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyLeft
	KeyRight
	KeyArrowUp
	KeyArrowDown
	KeyN
	KeyP
	KeyR
	KeyF12
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// NumberKey returns the key for digits 1 to 9, and KeyUnknown otherwise
func NumberKey(n int) Key {

	if n < 1 || n > 9 {
		return KeyUnknown
	}

	return Key1 + Key(n-1)
}

type keyState struct {
	Key                 Key
	IsDown              bool
	IsPressedThisFrame  bool
	IsReleasedThisFrame bool
}

var (
	keyMap = make(map[Key]keyState)

	isQuitRequested bool
)

// EventLoopStart resets the per-frame state. Call it before feeding the events of a frame.
func EventLoopStart() {

	for k, v := range keyMap {
		v.IsPressedThisFrame = false
		v.IsReleasedThisFrame = false
		keyMap[k] = v
	}

	isQuitRequested = false
}

func ClearKeyboardState() {
	clear(keyMap)
}

func HandleQuitEvent() {
	isQuitRequested = true
}

func IsQuitClicked() bool {
	return isQuitRequested
}

// HandleKeyEvent records a key press or release. Repeats (key held down) don't
// count as a new press.
func HandleKeyEvent(k Key, isDown bool, isRepeat bool) {

	if k == KeyUnknown {
		return
	}

	ks, ok := keyMap[k]
	if !ok {
		ks = keyState{Key: k}
	}

	ks.IsDown = isDown
	if !isRepeat {
		ks.IsPressedThisFrame = ks.IsPressedThisFrame || isDown
		ks.IsReleasedThisFrame = ks.IsReleasedThisFrame || !isDown
	}

	keyMap[k] = ks
}

func KeyClicked(k Key) bool {

	ks, ok := keyMap[k]
	if !ok {
		return false
	}

	return ks.IsPressedThisFrame
}

func KeyReleased(k Key) bool {

	ks, ok := keyMap[k]
	if !ok {
		return false
	}

	return ks.IsReleasedThisFrame
}

func KeyDown(k Key) bool {

	ks, ok := keyMap[k]
	if !ok {
		return false
	}

	return ks.IsDown
}

func KeyUp(k Key) bool {
	return !KeyDown(k)
}
