package metaclient

import jsoniter "github.com/json-iterator/go"

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary
