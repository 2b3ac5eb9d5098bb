package input

// Key is a keyboard key. Values follow SDL keycodes
// (http://wiki.libsdl.org/SDLKeycodeLookup).
type Key int32

const (
	KeyUnknown   Key = 0x00
	KeyBackspace Key = 0x08
	KeyTab       Key = 0x09
	KeyReturn    Key = 0x0D
	KeyEscape    Key = 0x1B
	KeySpace     Key = 0x20
	KeyExclaim   Key = 0x21
	KeyQuotedbl  Key = 0x22
	KeyHash      Key = 0x23
	KeyDollar    Key = 0x24
	KeyPercent   Key = 0x25
	KeyAmpersand Key = 0x26
	KeyQuote     Key = 0x27
	KeyLeftParen Key = 0x28
	KeyRightParen Key = 0x29
	KeyAsterisk  Key = 0x2A
	KeyPlus      Key = 0x2B
	KeyComma     Key = 0x2C
	KeyMinus     Key = 0x2D
	KeyPeriod    Key = 0x2E
	KeySlash     Key = 0x2F

	Key0 Key = 0x30
	Key1 Key = 0x31
	Key2 Key = 0x32
	Key3 Key = 0x33
	Key4 Key = 0x34
	Key5 Key = 0x35
	Key6 Key = 0x36
	Key7 Key = 0x37
	Key8 Key = 0x38
	Key9 Key = 0x39

	KeyColon        Key = 0x3A
	KeySemicolon    Key = 0x3B
	KeyLess         Key = 0x3C
	KeyEquals       Key = 0x3D
	KeyGreater      Key = 0x3E
	KeyQuestion     Key = 0x3F
	KeyAt           Key = 0x40
	KeyLeftBracket  Key = 0x5B
	KeyBackslash    Key = 0x5C
	KeyRightBracket Key = 0x5D
	KeyCaret        Key = 0x5E
	KeyUnderscore   Key = 0x5F
	KeyBackquote    Key = 0x60

	KeyA Key = 0x61
	KeyB Key = 0x62
	KeyC Key = 0x63
	KeyD Key = 0x64
	KeyE Key = 0x65
	KeyF Key = 0x66
	KeyG Key = 0x67
	KeyH Key = 0x68
	KeyI Key = 0x69
	KeyJ Key = 0x6A
	KeyK Key = 0x6B
	KeyL Key = 0x6C
	KeyM Key = 0x6D
	KeyN Key = 0x6E
	KeyO Key = 0x6F
	KeyP Key = 0x70
	KeyQ Key = 0x71
	KeyR Key = 0x72
	KeyS Key = 0x73
	KeyT Key = 0x74
	KeyU Key = 0x75
	KeyV Key = 0x76
	KeyW Key = 0x77
	KeyX Key = 0x78
	KeyY Key = 0x79
	KeyZ Key = 0x7A

	KeyDelete Key = 0x7F

	KeyCapsLock Key = 0x40000039
	KeyF1       Key = 0x4000003A
	KeyF2       Key = 0x4000003B
	KeyF3       Key = 0x4000003C
	KeyF4       Key = 0x4000003D
	KeyF5       Key = 0x4000003E
	KeyF6       Key = 0x4000003F
	KeyF7       Key = 0x40000040
	KeyF8       Key = 0x40000041
	KeyF9       Key = 0x40000042
	KeyF10      Key = 0x40000043
	KeyF11      Key = 0x40000044
	KeyF12      Key = 0x40000045

	KeyPrintScreen Key = 0x40000046
	KeyScrollLock  Key = 0x40000047
	KeyPause       Key = 0x40000048
	KeyInsert      Key = 0x40000049
	KeyHome        Key = 0x4000004A
	KeyPageUp      Key = 0x4000004B
	KeyEnd         Key = 0x4000004D
	KeyPageDown    Key = 0x4000004E

	KeyRight Key = 0x4000004F
	KeyLeft  Key = 0x40000050
	KeyDown  Key = 0x40000051
	KeyUp    Key = 0x40000052

	KeyNumLockClear   Key = 0x40000053
	KeyNumPadDivide   Key = 0x40000054
	KeyNumPadMultiply Key = 0x40000055
	KeyNumPadMinus    Key = 0x40000056
	KeyNumPadPlus     Key = 0x40000057
	KeyNumPadEnter    Key = 0x40000058
	KeyNumPad1        Key = 0x40000059
	KeyNumPad2        Key = 0x4000005A
	KeyNumPad3        Key = 0x4000005B
	KeyNumPad4        Key = 0x4000005C
	KeyNumPad5        Key = 0x4000005D
	KeyNumPad6        Key = 0x4000005E
	KeyNumPad7        Key = 0x4000005F
	KeyNumPad8        Key = 0x40000060
	KeyNumPad9        Key = 0x40000061
	KeyNumPad0        Key = 0x40000062
	KeyNumPadPeriod   Key = 0x40000063

	KeyApplication  Key = 0x40000065
	KeyPower        Key = 0x40000066
	KeyNumPadEquals Key = 0x40000067

	KeyLCtrl  Key = 0x400000E0
	KeyLShift Key = 0x400000E1
	KeyLAlt   Key = 0x400000E2
	KeyLGui   Key = 0x400000E3
	KeyRCtrl  Key = 0x400000E4
	KeyRShift Key = 0x400000E5
	KeyRAlt   Key = 0x400000E6
	KeyRGui   Key = 0x400000E7
)

// Code returns the SDL keycode of the key.
func (k Key) Code() int32 {
	return int32(k)
}

var knownKeys = map[int32]Key{}

func init() {
	for _, k := range []Key{
		KeyUnknown, KeyBackspace, KeyTab, KeyReturn, KeyEscape, KeySpace,
		KeyExclaim, KeyQuotedbl, KeyHash, KeyDollar, KeyPercent,
		KeyAmpersand, KeyQuote, KeyLeftParen, KeyRightParen, KeyAsterisk,
		KeyPlus, KeyComma, KeyMinus, KeyPeriod, KeySlash,
		Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9,
		KeyColon, KeySemicolon, KeyLess, KeyEquals, KeyGreater,
		KeyQuestion, KeyAt, KeyLeftBracket, KeyBackslash, KeyRightBracket,
		KeyCaret, KeyUnderscore, KeyBackquote,
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ,
		KeyK, KeyL, KeyM, KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT,
		KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
		KeyDelete, KeyCapsLock,
		KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9,
		KeyF10, KeyF11, KeyF12,
		KeyPrintScreen, KeyScrollLock, KeyPause, KeyInsert, KeyHome,
		KeyPageUp, KeyEnd, KeyPageDown,
		KeyRight, KeyLeft, KeyDown, KeyUp,
		KeyNumLockClear, KeyNumPadDivide, KeyNumPadMultiply,
		KeyNumPadMinus, KeyNumPadPlus, KeyNumPadEnter,
		KeyNumPad1, KeyNumPad2, KeyNumPad3, KeyNumPad4, KeyNumPad5,
		KeyNumPad6, KeyNumPad7, KeyNumPad8, KeyNumPad9, KeyNumPad0,
		KeyNumPadPeriod, KeyApplication, KeyPower, KeyNumPadEquals,
		KeyLCtrl, KeyLShift, KeyLAlt, KeyLGui,
		KeyRCtrl, KeyRShift, KeyRAlt, KeyRGui,
	} {
		knownKeys[int32(k)] = k
	}
}

// KeyFromCode maps an SDL keycode back to a Key, falling back to
// KeyUnknown for codes outside the known set.
func KeyFromCode(code int32) Key {
	if k, ok := knownKeys[code]; ok {
		return k
	}
	return KeyUnknown
}
