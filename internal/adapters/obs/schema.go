package obs

import "encoding/xml"

// Directory is the source listing of a project.
type Directory struct {
	XMLName xml.Name         `xml:"directory"`
	Entries []DirectoryEntry `xml:"entry"`
}

// DirectoryEntry is one package of a source listing.
type DirectoryEntry struct {
	Name string `xml:"name,attr"`
}

// Collection is the result of a package search.
type Collection struct {
	XMLName  xml.Name        `xml:"collection"`
	Packages []SearchPackage `xml:"package"`
}

// SearchPackage is the metadata of one package in a search result.
type SearchPackage struct {
	Name    string     `xml:"name,attr"`
	Project string     `xml:"project,attr"`
	Devel   *DevelElem `xml:"devel"`
}

// DevelElem names the devel project of a package.
type DevelElem struct {
	Project string `xml:"project,attr"`
	Package string `xml:"package,attr"`
}

// RevisionList is the commit history of a package.
type RevisionList struct {
	XMLName   xml.Name       `xml:"revisionlist"`
	Revisions []RevisionElem `xml:"revision"`
}

// RevisionElem is one commit of a package.
type RevisionElem struct {
	Rev    string `xml:"rev,attr"`
	SrcMD5 string `xml:"srcmd5"`
	Time   int64  `xml:"time"`
}

// SourceInfoElem is the expanded source view of a package.
type SourceInfoElem struct {
	XMLName   xml.Name    `xml:"sourceinfo"`
	Package   string      `xml:"package,attr"`
	SrcMD5    string      `xml:"srcmd5,attr"`
	VerifyMD5 string      `xml:"verifymd5,attr"`
	Linked    *LinkedElem `xml:"linked"`
}

// LinkedElem is the link target of a package.
type LinkedElem struct {
	Project string `xml:"project,attr"`
	Package string `xml:"package,attr"`
}

// Feed is the Atom feed of recent commits in a project.
type Feed struct {
	XMLName xml.Name    `xml:"http://www.w3.org/2005/Atom feed"`
	Entries []FeedEntry `xml:"http://www.w3.org/2005/Atom entry"`
}

// FeedEntry is one commit of the feed.
type FeedEntry struct {
	Title string `xml:"http://www.w3.org/2005/Atom title"`
}

// RequestCollection is the result of a request query.
type RequestCollection struct {
	XMLName  xml.Name      `xml:"collection"`
	Requests []RequestElem `xml:"request"`
}

// RequestElem is one request of a request query.
type RequestElem struct {
	ID      string       `xml:"id,attr"`
	State   StateElem    `xml:"state"`
	Actions []ActionElem `xml:"action"`
}

// StateElem is the state of a request.
type StateElem struct {
	Name string `xml:"name,attr"`
}

// ActionElem is one action of a request.
type ActionElem struct {
	Type   string     `xml:"type,attr"`
	Target TargetElem `xml:"target"`
}

// TargetElem is the target of a request action.
type TargetElem struct {
	Project string `xml:"project,attr"`
	Package string `xml:"package,attr"`
}
