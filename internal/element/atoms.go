// internal/element/atoms.go
package element

// Scripts injected into the page. Each is a function declaration that the
// ScriptExecutor invokes with positional arguments. They resolve the window
// from the element's own document so they behave the same inside frames.

// isDisplayedAtom(elem, ignoreOpacity) reports whether elem is rendered in a
// way a user could see. It throws a stale element reference error for nodes
// that are no longer attached.
const isDisplayedAtom = `function(elem, ignoreOpacity) {
  if (elem.isConnected === false) {
    throw new Error('stale element reference: element is not attached to the page document');
  }
  var win = (elem.ownerDocument && elem.ownerDocument.defaultView) || window;
  function css(e, prop) {
    var s = win.getComputedStyle ? win.getComputedStyle(e, null) : e.currentStyle;
    return s ? s[prop] : '';
  }
  function is(e, tag) {
    return !!e && e.nodeType == 1 && String(e.tagName).toUpperCase() == tag;
  }
  function ancestors(e, test) {
    for (var n = e; n && n.nodeType == 1; n = n.parentNode) {
      if (!test(n)) { return false; }
    }
    return true;
  }
  function hasSize(e) {
    var r = e.getBoundingClientRect();
    if (r.width > 0 && r.height > 0) { return true; }
    if (css(e, 'overflow') == 'hidden') { return false; }
    for (var c = e.firstChild; c; c = c.nextSibling) {
      if (c.nodeType == 3 && /\S/.test(c.nodeValue)) { return true; }
      if (c.nodeType == 1 && css(c, 'display') != 'none' && hasSize(c)) { return true; }
    }
    return false;
  }
  function shown(e) {
    if (is(e, 'OPTION') || is(e, 'OPTGROUP')) {
      var select = e;
      while (select && !is(select, 'SELECT')) { select = select.parentNode; }
      return !!select && shown(select);
    }
    if (is(e, 'AREA')) {
      var map = e.parentNode;
      if (!is(map, 'MAP') || !map.name) { return false; }
      var img = e.ownerDocument.querySelector('img[usemap="#' + map.name + '"]');
      return !!img && shown(img);
    }
    if (is(e, 'INPUT') && String(e.type).toLowerCase() == 'hidden') { return false; }
    if (is(e, 'NOSCRIPT')) { return false; }
    if (!ancestors(e, function(n) { return css(n, 'display') != 'none'; })) { return false; }
    var visibility = css(e, 'visibility');
    if (visibility == 'hidden' || visibility == 'collapse') { return false; }
    if (!ignoreOpacity && !ancestors(e, function(n) { return parseFloat(css(n, 'opacity')) != 0; })) {
      return false;
    }
    return hasSize(e);
  }
  return shown(elem);
}`

// isEnabledAtom(elem) reports whether a form control accepts interaction.
// Elements that cannot be disabled are always enabled.
const isEnabledAtom = `function(elem) {
  var disableable = ['BUTTON', 'INPUT', 'OPTGROUP', 'OPTION', 'SELECT', 'TEXTAREA'];
  var tag = String(elem.tagName).toUpperCase();
  if (disableable.indexOf(tag) < 0) { return true; }
  if (elem.disabled) { return false; }
  for (var p = elem.parentNode; p && p.nodeType == 1; p = p.parentNode) {
    var ptag = String(p.tagName).toUpperCase();
    if ((tag == 'OPTION' || tag == 'OPTGROUP') && (ptag == 'OPTGROUP' || ptag == 'SELECT') && p.disabled) {
      return false;
    }
    if (ptag == 'FIELDSET' && p.disabled) {
      var legend = null;
      for (var c = p.firstElementChild; c; c = c.nextElementSibling) {
        if (String(c.tagName).toUpperCase() == 'LEGEND') { legend = c; break; }
      }
      if (!legend || !legend.contains(elem)) { return false; }
    }
  }
  return true;
}`

// isSelectedAtom(elem) returns a boolean for selectable elements and null for
// everything else.
const isSelectedAtom = `function(elem) {
  var tag = String(elem.tagName).toUpperCase();
  if (tag == 'OPTION') { return !!elem.selected; }
  if (tag == 'INPUT') {
    var type = String(elem.type).toLowerCase();
    if (type == 'checkbox' || type == 'radio') { return !!elem.checked; }
  }
  return null;
}`

// getAttributeAtom(elem, name) returns the attribute or property value as a
// string, or null when the element has no such value.
const getAttributeAtom = `function(elem, name) {
  var lower = String(name).toLowerCase();
  var booleans = ['async', 'autofocus', 'autoplay', 'checked', 'compact', 'controls',
    'declare', 'default', 'defaultchecked', 'defaultselected', 'defer', 'disabled',
    'ended', 'formnovalidate', 'hidden', 'indeterminate', 'iscontenteditable', 'ismap',
    'itemscope', 'loop', 'multiple', 'muted', 'nohref', 'noresize', 'noshade',
    'novalidate', 'nowrap', 'open', 'paused', 'pubdate', 'readonly', 'required',
    'reversed', 'scoped', 'seamless', 'seeking', 'selected', 'truespeed', 'willvalidate'];
  var tag = String(elem.tagName).toUpperCase();
  if (lower == 'style') {
    return elem.style ? String(elem.style.cssText) : null;
  }
  if ((lower == 'selected' || lower == 'checked') && (tag == 'OPTION' || tag == 'INPUT')) {
    return elem[lower] ? 'true' : null;
  }
  if ((lower == 'href' && tag == 'A') || (lower == 'src' && tag == 'IMG')) {
    var raw = elem.getAttribute(lower);
    return raw === null ? null : String(elem[lower]);
  }
  if (booleans.indexOf(lower) >= 0) {
    return (elem.hasAttribute(lower) || elem[lower] === true) ? 'true' : null;
  }
  var prop = lower == 'class' ? 'className' : name;
  var value;
  try { value = elem[prop]; } catch (e) {}
  if (value === undefined || value === null || typeof value == 'object' || typeof value == 'function') {
    var attr = elem.getAttribute(name);
    return attr === null ? null : String(attr);
  }
  return String(value);
}`

// isHiddenByOverflowScript(elem, x, y) finds the nearest ancestor with
// overflow auto or scroll and reports whether (x, y) lies outside its scrolled
// visible region. No such ancestor means not hidden.
const isHiddenByOverflowScript = `function(elem, x, y) {
  var doc = elem.ownerDocument || document;
  var win = doc.defaultView || window;
  function css(n) {
    return win.getComputedStyle ? win.getComputedStyle(n, null) : n.currentStyle;
  }
  var p = elem.parentNode;
  var s = (p && p !== doc) ? css(p) : null;
  while (p != null && (s == null || (s.overflow != 'auto' && s.overflow != 'scroll'))) {
    p = p.parentNode;
    if (p == null || p === doc) {
      p = null;
    } else {
      s = css(p);
    }
  }
  return p != null &&
    (x < p.scrollLeft || x > p.scrollLeft + parseInt(s.width, 10) ||
     y < p.scrollTop || y > p.scrollTop + parseInt(s.height, 10));
}`

// frameElementScript(win) returns the frame or iframe element hosting win.
const frameElementScript = `function(win) { return win.frameElement; }`
