package meta

import jsoniter "github.com/json-iterator/go"

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary
