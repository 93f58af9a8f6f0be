package cim

// Object is everything the decoder can hand to a result sink:
// Name (a CLASSNAME), Value (a bare VALUE), *Class, *Instance,
// *InstanceName, *QualifierDeclaration, *ClassPath, *InstancePath,
// *ClassNamePath, *InstanceNamePath, *MethodResponse and *CimomError.
type Object interface{ isObject() }

func (Name) isObject()                  {}
func (Value) isObject()                 {}
func (*Class) isObject()                {}
func (*Instance) isObject()             {}
func (*InstanceName) isObject()         {}
func (*QualifierDeclaration) isObject() {}
func (*ClassPath) isObject()            {}
func (*InstancePath) isObject()         {}
func (*ClassNamePath) isObject()        {}
func (*InstanceNamePath) isObject()     {}
func (*MethodResponse) isObject()       {}
func (*CimomError) isObject()           {}

// ObjectName names the object of an association request:
// a class Name or an *InstanceName.
type ObjectName interface{ isObjectName() }

func (Name) isObjectName()          {}
func (*InstanceName) isObjectName() {}
