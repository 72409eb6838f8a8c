package droidregexp

func IsPackageName(name string) bool {
	return PackageName.MatchString(name)
}

func IsAPK(name string) bool {
	return APK.MatchString(name)
}

func IsBinaryXML(name string) bool {
	return BinaryXML.MatchString(name)
}
