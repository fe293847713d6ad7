package density

import "sync"

// Dictionaries are a quarter to a full megabyte each; pool them across codecs.
var (
	chameleonDictionaryPool = sync.Pool{
		New: func() any {
			return &chameleonDictionary{}
		},
	}
	cheetahDictionaryPool = sync.Pool{
		New: func() any {
			return &cheetahDictionary{}
		},
	}
)

// acquireChameleonDictionary returns a cleared dictionary from the pool.
func acquireChameleonDictionary() *chameleonDictionary {
	dict := chameleonDictionaryPool.Get().(*chameleonDictionary)
	dict.reset()
	return dict
}

// releaseChameleonDictionary returns a dictionary to the pool.
func releaseChameleonDictionary(dict *chameleonDictionary) {
	if dict == nil {
		return
	}

	chameleonDictionaryPool.Put(dict)
}

// acquireCheetahDictionary returns a cleared dictionary from the pool.
func acquireCheetahDictionary() *cheetahDictionary {
	dict := cheetahDictionaryPool.Get().(*cheetahDictionary)
	dict.reset()
	return dict
}

// releaseCheetahDictionary returns a dictionary to the pool.
func releaseCheetahDictionary(dict *cheetahDictionary) {
	if dict == nil {
		return
	}

	cheetahDictionaryPool.Put(dict)
}
