package semver

import "github.com/Masterminds/semver/v3"

func LessThan(a, b string) (bool, error) {
	versionA, err := semver.NewVersion(a)
	if err != nil {
		return false, err
	}

	versionB, err := semver.NewVersion(b)
	if err != nil {
		return false, err
	}

	return versionA.LessThan(versionB), nil
}

// AtLeast reports whether installed >= minimum in semantic-version order.
func AtLeast(installed, minimum string) (bool, error) {
	less, err := LessThan(installed, minimum)
	if err != nil {
		return false, err
	}

	return !less, nil
}

// Normalize parses v leniently ("v7.71", "7.71.0") and returns the canonical
// major.minor.patch form.
func Normalize(v string) (string, error) {
	version, err := semver.NewVersion(v)
	if err != nil {
		return "", err
	}

	return version.String(), nil
}
